package fusion

import (
	"context"
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
)

// Options groups the tunables of the engine. Zero values fall back to the
// documented defaults.
type Options struct {
	GForceLimit     float64       // primary trigger threshold, gravities
	ConfThreshold   float64       // CAM_FALL_CONF_THRESHOLD
	HoldDuration    time.Duration // minimum Active window
	VisionWait      time.Duration // bounded wait for corroboration
	VisionFreshness time.Duration // how long a cached cam report stays usable
	MotionTopic     string
	CamTopic        string
	CloudTopic      string
	AlertTopic      string
}

// Service is the sensor fusion and emergency coordination engine. It ties the
// ingestor, decision gate, vision feed, state machine and status view to the
// telemetry bus.
type Service struct {
	consumer  bus.IConsumer
	publisher bus.IPublisher
	ingestor  *Ingestor
	gate      *DecisionGate
	sm        *StateMachine
	feed      *Feed
	view      *StatusView
	metrics   *Metrics
	opts      Options
}

func NewService(
	consumer bus.IConsumer,
	publisher bus.IPublisher,
	actuator Actuator,
	provider Provider,
	view *StatusView,
	metrics *Metrics,
	opts Options,
) *Service {
	if opts.GForceLimit <= 0 {
		opts.GForceLimit = 2.5
	}
	if opts.ConfThreshold <= 0 {
		opts.ConfThreshold = 0.6
	}
	if opts.VisionWait <= 0 {
		opts.VisionWait = 1500 * time.Millisecond
	}
	if opts.VisionFreshness <= 0 {
		opts.VisionFreshness = 3 * time.Second
	}
	if view == nil {
		view = NewStatusView()
	}

	s := &Service{
		consumer:  consumer,
		publisher: publisher,
		gate:      NewDecisionGate(opts.ConfThreshold),
		feed:      NewFeed(opts.VisionFreshness, provider),
		view:      view,
		metrics:   metrics,
		opts:      opts,
	}
	s.ingestor = NewIngestor(opts.GForceLimit, publisher, opts.CloudTopic)
	if metrics != nil {
		actuator = &meteredActuator{next: actuator, metrics: metrics}
	}
	s.sm = NewStateMachine(actuator, opts.HoldDuration, s.onAlertChange)
	consumer.SetHandler(s.handleMessage)
	return s
}

// View exposes the shared status aggregate for the HTTP API.
func (s *Service) View() *StatusView { return s.view }

// State exposes the emergency singleton for the HTTP API.
func (s *Service) State() model.EmergencyState { return s.sm.State() }

// Start runs the consume loop until ctx is cancelled, then waits for any
// in-flight actuation to finish.
func (s *Service) Start(ctx context.Context) {
	s.consumer.ConsumeMessage(ctx)
	s.sm.Stop()
}

func (s *Service) handleMessage(topic string, msg mqtt.Message) error {
	switch topic {
	case s.opts.MotionTopic:
		s.handleMotion(msg.Payload())
	case s.opts.CamTopic:
		s.handleCam(msg.Payload())
	default:
		log.Printf("fusion: message on unexpected topic %s", topic)
	}
	return nil
}

func (s *Service) handleMotion(payload []byte) {
	if s.metrics != nil {
		s.metrics.MessagesTotal.WithLabelValues("motion").Inc()
	}
	md, primary := s.ingestor.Ingest(payload)
	s.view.SetGForce(md.GForce)
	if !primary {
		return
	}
	// the bounded corroboration wait must not block other telemetry
	go s.confirmFromMotion()
}

func (s *Service) confirmFromMotion() {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.VisionWait+time.Second)
	defer cancel()
	vision := s.feed.Await(ctx, s.opts.VisionWait)
	d := s.gate.Decide(true, vision)
	if !d.Confirmed {
		return
	}
	s.confirm(d)
}

func (s *Service) handleCam(payload []byte) {
	if s.metrics != nil {
		s.metrics.MessagesTotal.WithLabelValues("cam").Inc()
	}
	var vr model.VisionReport
	if err := json.Unmarshal(payload, &vr); err != nil {
		log.Printf("fusion: malformed cam payload: %v", err)
		return
	}
	vr.AssessedAt = time.Now()
	s.view.SetVision(vr.Emotions, vr.Confidence)
	s.feed.Offer(&vr)

	if d := s.gate.Decide(false, &vr); d.Confirmed {
		s.confirm(d)
	}
}

func (s *Service) confirm(d Decision) {
	if !s.sm.Confirm(d.Path) {
		return
	}
	if s.metrics != nil {
		s.metrics.ConfirmationsTotal.WithLabelValues(d.Path).Inc()
	}
}

// onAlertChange publishes the state event (QoS1) and mirrors the phase into
// the status view and metrics.
func (s *Service) onAlertChange(evt model.AlertStateEvent) {
	s.view.SetAlert(evt.Phase)
	if s.metrics != nil {
		if evt.Phase == model.PhaseActive {
			s.metrics.AlertActive.Set(1)
		} else {
			s.metrics.AlertActive.Set(0)
		}
	}
	b, err := json.Marshal(evt)
	if err != nil {
		log.Printf("fusion: marshal alert event: %v", err)
		return
	}
	if err := s.publisher.PublishTo(s.opts.AlertTopic, 1, false, b); err != nil {
		log.Printf("fusion: publish alert event: %v", err)
	}
}

// meteredActuator counts actuation faults without coupling the state machine
// to prometheus.
type meteredActuator struct {
	next    Actuator
	metrics *Metrics
}

func (a *meteredActuator) Trigger(ctx context.Context, reason string) error {
	err := a.next.Trigger(ctx, reason)
	if err != nil {
		a.metrics.ActuationFailures.Inc()
	}
	return err
}

func (a *meteredActuator) Reset(ctx context.Context) error {
	err := a.next.Reset(ctx)
	if err != nil {
		a.metrics.ActuationFailures.Inc()
	}
	return err
}
