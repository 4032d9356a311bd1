package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
	"github.com/eldersafe/gateway/pkg/dedup"
)

// InfluxConfig carries the connection and bucket parameters.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Topics tells the service which inbound topic maps to which measurement.
type Topics struct {
	Motion string
	Cam    string
	Env    string
	Alert  string
}

// Service consumes the gateway topics and writes one point per message.
// A bad payload is logged and skipped; the stream is never blocked.
type Service struct {
	consumer bus.IConsumer
	writer   *Writer
	topics   Topics
	deduper  *dedup.Deduper
}

func NewService(consumer bus.IConsumer, writer *Writer, topics Topics) *Service {
	s := &Service{
		consumer: consumer,
		writer:   writer,
		topics:   topics,
		// alert events arrive at QoS1; drop redeliveries by payload hash
		deduper: dedup.New(10*time.Minute, 20000),
	}
	consumer.SetHandler(s.handleMessage)
	return s
}

// Start blocks until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	s.consumer.ConsumeMessage(ctx)
}

func (s *Service) handleMessage(topic string, msg mqtt.Message) error {
	switch topic {
	case s.topics.Motion:
		return s.writeMotion(msg.Payload())
	case s.topics.Cam:
		return s.writeCam(msg.Payload())
	case s.topics.Env:
		return s.writeEnv(msg.Payload())
	case s.topics.Alert:
		if !s.deduper.ShouldProcess(dedup.Fingerprint(msg.Payload())) {
			return nil
		}
		return s.writeAlert(msg.Payload())
	}
	return nil
}

func (s *Service) writeMotion(payload []byte) error {
	var md model.MotionData
	if err := json.Unmarshal(payload, &md); err != nil {
		log.Printf("persistence: invalid motion JSON: %v", err)
		return nil
	}
	now := time.Now()
	fields := map[string]interface{}{"g_force": md.GForce, "mic": md.Mic}
	tags := map[string]string{"sensor": "wearable"}
	// mirror measurement kept for the cloud relay consumer
	s.write(influxdb2.NewPoint("motion", tags, fields, now))
	s.write(influxdb2.NewPoint("cloud_motion", tags, fields, now))
	return nil
}

func (s *Service) writeCam(payload []byte) error {
	var vr model.VisionReport
	if err := json.Unmarshal(payload, &vr); err != nil {
		log.Printf("persistence: invalid cam JSON: %v", err)
		return nil
	}
	fall := 0
	if vr.FallDetected {
		fall = 1
	}
	fields := map[string]interface{}{
		"fall_detected": fall,
		"emotion":       vr.Emotions,
	}
	if vr.HasConfidence() {
		fields["confidence"] = vr.ConfidenceClamped()
	}
	s.write(influxdb2.NewPoint("camera", map[string]string{"sensor": "picam"}, fields, time.Now()))
	return nil
}

func (s *Service) writeEnv(payload []byte) error {
	var env model.EnvSample
	if err := json.Unmarshal(payload, &env); err != nil {
		log.Printf("persistence: invalid env JSON: %v", err)
		return nil
	}
	smoke := 0
	if env.Smoke {
		smoke = 1
	}
	// absent readings are omitted, never written as false zeros
	fields := map[string]interface{}{"smoke": smoke}
	if env.Temp != nil {
		fields["temperature"] = *env.Temp
	}
	if env.Humidity != nil {
		fields["humidity"] = *env.Humidity
	}
	t := env.Timestamp
	if t.IsZero() {
		t = time.Now()
	}
	s.write(influxdb2.NewPoint("environment", map[string]string{"sensor": "dht"}, fields, t))
	return nil
}

func (s *Service) writeAlert(payload []byte) error {
	var evt model.AlertStateEvent
	if err := json.Unmarshal(payload, &evt); err != nil {
		log.Printf("persistence: invalid alert JSON: %v", err)
		return nil
	}
	active := 0
	if evt.Phase == model.PhaseActive {
		active = 1
	}
	t := evt.Timestamp
	if t.IsZero() {
		t = time.Now()
	}
	fields := map[string]interface{}{
		"active": active,
		"reason": evt.Reason,
	}
	s.write(influxdb2.NewPoint("alert", map[string]string{"source": "fusion"}, fields, t))
	return nil
}

func (s *Service) write(p *write.Point) {
	s.writer.api.WritePoint(p)
	s.writer.MarkIngest(p.Name())
}

// String implements a debug summary for startup logs.
func (t Topics) String() string {
	return fmt.Sprintf("motion=%s cam=%s env=%s alert=%s", t.Motion, t.Cam, t.Env, t.Alert)
}
