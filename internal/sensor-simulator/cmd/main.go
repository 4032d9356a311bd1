package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	simulator "github.com/eldersafe/gateway/internal/sensor-simulator"
	"github.com/eldersafe/gateway/pkg/bus"
)

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvFloat(k string, d float64) float64 {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mode := strings.ToLower(getenv("SIM_MODE", "both")) // wearable | camera | both
	motionTopic := getenv("TOPIC_MOTION", "elder/sensor/motion")
	camTopic := getenv("TOPIC_CAM", "elder/sensor/cam")

	busCfg := &bus.Config{
		Host:     getenv("MQTT_HOST", "localhost"),
		Port:     getenvInt("MQTT_PORT", 1883),
		User:     getenv("MQTT_USER", ""),
		Password: getenv("MQTT_PASSWORD", ""),
		ClientID: fmt.Sprintf("SensorSimulator-%s", getenv("HOSTNAME", "local")),
	}
	client, err := bus.NewConn(busCfg, ctx)
	if err != nil {
		log.Fatalf("MQTT connect failed: %v", err)
	}

	if mode == "wearable" || mode == "both" {
		gen := simulator.NewMotionGenerator(
			getenvFloat("SPIKE_PROB", 0.01),
			getenvFloat("SPIKE_G", 3.5),
		)
		sim := simulator.NewWearableSimulator(
			bus.NewPublisher(client, motionTopic),
			gen,
			getenv("SOURCE_ID", "esp32-1"),
		)
		go sim.Start(ctx, time.Duration(getenvInt("MOTION_INTERVAL_MS", 1000))*time.Millisecond)
	}

	if mode == "camera" || mode == "both" {
		gen := simulator.NewVisionGenerator(getenvFloat("FALL_PROB", 0.02))
		sim := simulator.NewCameraSimulator(bus.NewPublisher(client, camTopic), gen)
		go sim.Start(ctx, time.Duration(getenvInt("CAM_INTERVAL_MS", 10000))*time.Millisecond)
	}

	log.Printf("simulator running (mode=%s motion=%s cam=%s)", mode, motionTopic, camTopic)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	<-sigc
	cancel()
}
