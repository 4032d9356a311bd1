package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eldersafe/gateway/internal/services/fusion"
	"github.com/eldersafe/gateway/pkg/bus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := loadConfig()

	busCfg := &bus.Config{
		Host:     cfg.MQTTHost,
		Port:     cfg.MQTTPort,
		User:     cfg.MQTTUser,
		Password: cfg.MQTTPassword,
		ClientID: fmt.Sprintf("FusionEngine-%s", getenv("HOSTNAME", "local")),
	}
	client, err := bus.NewConn(busCfg, ctx)
	if err != nil {
		log.Fatalf("MQTT connect failed: %v", err)
	}

	consumer := bus.NewMultiConsumer(client, []string{cfg.MotionTopic, cfg.CamTopic}, nil)
	publisher := bus.NewPublisher(client, cfg.AlertTopic)
	envPublisher := bus.NewPublisher(client, cfg.EnvTopic)

	var actuator fusion.Actuator
	if cfg.ActuatorAddr != "" {
		a, closeFn, err := fusion.NewGRPCActuator(ctx, cfg.ActuatorAddr)
		if err != nil {
			log.Fatalf("actuator dial failed: %v", err)
		}
		defer closeFn()
		actuator = a
	} else {
		log.Printf("no ACTUATOR_GRPC_ADDR set, using mock actuator")
		actuator = fusion.LogActuator{}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := fusion.NewMetrics(reg)

	view := fusion.NewStatusView()
	svc := fusion.NewService(consumer, publisher, actuator, nil, view, metrics, fusion.Options{
		GForceLimit:     cfg.GForceLimit,
		ConfThreshold:   cfg.ConfThreshold,
		HoldDuration:    cfg.HoldDuration,
		VisionWait:      cfg.VisionWait,
		VisionFreshness: cfg.VisionFreshness,
		MotionTopic:     cfg.MotionTopic,
		CamTopic:        cfg.CamTopic,
		CloudTopic:      cfg.CloudTopic,
		AlertTopic:      cfg.AlertTopic,
	})

	envMon := fusion.NewEnvMonitor(fusion.NewSimulatedEnvSensor(), envPublisher, view, cfg.EnvInterval, metrics)
	go envMon.Run(ctx)

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: fusion.NewMux(svc, reg)}
	go func() {
		log.Printf("fusion: status API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("fusion: http server: %v", err)
		}
	}()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		<-sigc
		cancel()
	}()

	log.Printf("fusion: engine running (motion=%s cam=%s gLimit=%.2f confThresh=%.2f hold=%s)",
		cfg.MotionTopic, cfg.CamTopic, cfg.GForceLimit, cfg.ConfThreshold, cfg.HoldDuration)

	// blocks until ctx is cancelled, then waits for in-flight actuation
	svc.Start(ctx)
	_ = srv.Shutdown(context.Background())
}
