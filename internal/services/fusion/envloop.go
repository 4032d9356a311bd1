package fusion

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
)

// EnvSensor is the external ambient-sensor collaborator (DHT + smoke input).
// Retry logic lives behind this interface, not in the loop.
type EnvSensor interface {
	Read(ctx context.Context) (model.EnvSample, error)
}

// EnvMonitor publishes one ambient sample per interval and mirrors it into
// the status view. It is fully decoupled from the emergency path: a bad read
// yields absent values and the loop simply proceeds to the next cycle.
type EnvMonitor struct {
	sensor    EnvSensor
	publisher bus.IPublisher
	view      *StatusView
	interval  time.Duration
	metrics   *Metrics
}

func NewEnvMonitor(sensor EnvSensor, publisher bus.IPublisher, view *StatusView, interval time.Duration, metrics *Metrics) *EnvMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &EnvMonitor{sensor: sensor, publisher: publisher, view: view, interval: interval, metrics: metrics}
}

// Run blocks until ctx is cancelled.
func (m *EnvMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cycle(ctx)
		}
	}
}

func (m *EnvMonitor) cycle(ctx context.Context) {
	rctx, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	sample, err := m.sensor.Read(rctx)
	if err != nil {
		// absent values, not false zeros
		log.Printf("env: sensor read failed: %v", err)
		sample = model.EnvSample{}
		if m.metrics != nil {
			m.metrics.EnvReadFailures.Inc()
		}
	}
	sample.Timestamp = time.Now()

	if m.view != nil {
		m.view.SetEnv(sample)
	}
	if m.metrics != nil {
		m.metrics.EnvCycles.Inc()
	}

	payload, err := json.Marshal(sample)
	if err != nil {
		log.Printf("env: marshal error: %v", err)
		return
	}
	if err := m.publisher.PublishMessage(payload); err != nil {
		log.Printf("env: publish error: %v", err)
	}
}

// SimulatedEnvSensor stands in for real hardware on non-Pi environments,
// mirroring the mock mode of the original hardware controller.
type SimulatedEnvSensor struct {
	rng *rand.Rand
}

func NewSimulatedEnvSensor() *SimulatedEnvSensor {
	return &SimulatedEnvSensor{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *SimulatedEnvSensor) Read(_ context.Context) (model.EnvSample, error) {
	// occasional absent reading, like a flaky DHT
	var sample model.EnvSample
	if s.rng.Intn(10) > 0 {
		t := 20.0 + s.rng.Float64()*6
		h := 40.0 + s.rng.Float64()*20
		sample.Temp = &t
		sample.Humidity = &h
	}
	sample.Smoke = s.rng.Intn(50) == 0
	return sample, nil
}
