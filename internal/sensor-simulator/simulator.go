package sensor_simulator

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/eldersafe/gateway/pkg/bus"
)

// WearableSimulator publishes motion samples at a fixed cadence, standing in
// for the ESP32 wearable firmware.
type WearableSimulator struct {
	generator *MotionGenerator
	publisher bus.IPublisher
	sourceID  string
}

func NewWearableSimulator(publisher bus.IPublisher, gen *MotionGenerator, sourceID string) *WearableSimulator {
	return &WearableSimulator{generator: gen, publisher: publisher, sourceID: sourceID}
}

// Start publishes one sample per interval until ctx is cancelled.
func (s *WearableSimulator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			md := s.generator.Next(s.sourceID)
			payload, _ := json.Marshal(md)
			log.Printf("simulator: pub motion g_force=%.2f mic=%.0f", md.GForce, md.Mic)
			if err := s.publisher.PublishMessage(payload); err != nil {
				log.Printf("simulator: publish error: %v", err)
			}
		}
	}
}

// CameraSimulator publishes periodic camera reports, standing in for the
// Pi-side expression loop.
type CameraSimulator struct {
	generator *VisionGenerator
	publisher bus.IPublisher
}

func NewCameraSimulator(publisher bus.IPublisher, gen *VisionGenerator) *CameraSimulator {
	return &CameraSimulator{generator: gen, publisher: publisher}
}

func (s *CameraSimulator) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			vr := s.generator.Next()
			payload, _ := json.Marshal(vr)
			log.Printf("simulator: pub cam fall=%v emotions=%s", vr.FallDetected, vr.Emotions)
			if err := s.publisher.PublishMessage(payload); err != nil {
				log.Printf("simulator: publish error: %v", err)
			}
		}
	}
}
