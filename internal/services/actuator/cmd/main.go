package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"google.golang.org/grpc"

	pb "github.com/eldersafe/gateway/grpc/gen/go/actuator"
	"github.com/eldersafe/gateway/internal/services/actuator"
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

	host := getenv("MQTT_HOST", "localhost")
	port := getenvInt("MQTT_PORT", 1883)
	user := getenv("MQTT_USER", "")
	pass := getenv("MQTT_PASSWORD", "")
	resultTopic := getenv("TOPIC_ACTUATION_RESULT", "elder/event/actuationResult")
	grpcAddr := getenv("GRPC_ADDR", ":50061")

	busCfg := &bus.Config{
		Host:     host,
		Port:     port,
		User:     user,
		Password: pass,
		ClientID: fmt.Sprintf("Actuator-%s", getenv("HOSTNAME", "local")),
	}
	client, err := bus.NewConn(busCfg, ctx)
	if err != nil {
		log.Fatalf("MQTT connect failed: %v", err)
	}
	publisher := bus.NewPublisher(client, resultTopic)

	handler := actuator.NewGrpcHandler(actuator.MockHardware{}, publisher, resultTopic)

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", grpcAddr, err)
	}
	srv := grpc.NewServer()
	pb.RegisterActuatorServiceServer(srv, handler)

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		<-sigc
		// let an in-flight trigger/reset finish before exit
		srv.GracefulStop()
		cancel()
	}()

	log.Printf("actuator: daemon listening on %s (results -> %s)", grpcAddr, resultTopic)
	if err := srv.Serve(lis); err != nil {
		log.Fatalf("grpc serve: %v", err)
	}
}
