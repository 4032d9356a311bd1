package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"

	"github.com/eldersafe/gateway/internal/services/persistence"
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

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topics := persistence.Topics{
		Motion: getenv("TOPIC_MOTION", "elder/sensor/motion"),
		Cam:    getenv("TOPIC_CAM", "elder/sensor/cam"),
		Env:    getenv("TOPIC_ENV", "elder/sensor/env"),
		Alert:  getenv("TOPIC_ALERT", "elder/event/alert"),
	}

	busCfg := &bus.Config{
		Host:     getenv("MQTT_HOST", "localhost"),
		Port:     getenvInt("MQTT_PORT", 1883),
		User:     getenv("MQTT_USER", ""),
		Password: getenv("MQTT_PASSWORD", ""),
		ClientID: fmt.Sprintf("Persistence-%s", getenv("HOSTNAME", "local")),
	}
	client, err := bus.NewConn(busCfg, ctx)
	if err != nil {
		log.Fatalf("MQTT connect failed: %v", err)
	}

	influxURL := getenv("INFLUX_URL", "http://localhost:8086")
	influxToken := getenv("INFLUX_TOKEN", "")
	influxOrg := getenv("INFLUX_ORG", "eldersafe")
	influxBucket := getenv("INFLUX_BUCKET", "gateway")
	if influxToken == "" {
		log.Fatalf("INFLUX_TOKEN is required")
	}

	influx := influxdb2.NewClient(influxURL, influxToken)
	defer influx.Close()

	writer := persistence.NewWriter(influx.WriteAPI(influxOrg, influxBucket))

	consumer := bus.NewMultiConsumer(client, []string{topics.Motion, topics.Cam, topics.Env, topics.Alert}, nil)
	svc := persistence.NewService(consumer, writer, topics)

	api := persistence.NewAPI(influx, influxOrg, influxBucket, writer)
	srv := &http.Server{Addr: ":" + getenv("PORT", "5001"), Handler: api.Mux()}
	go func() {
		log.Printf("persistence: API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("persistence: http server: %v", err)
		}
	}()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		<-sigc
		cancel()
	}()

	log.Printf("persistence: consuming %s -> influx %s/%s", topics, influxURL, influxBucket)
	svc.Start(ctx)
	_ = srv.Shutdown(context.Background())
}
