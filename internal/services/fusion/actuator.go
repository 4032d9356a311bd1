package fusion

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/eldersafe/gateway/grpc/gen/go/actuator"
)

// grpcActuator drives the actuator daemon over gRPC.
type grpcActuator struct {
	conn *grpc.ClientConn
	cli  pb.ActuatorServiceClient
}

var _ Actuator = (*grpcActuator)(nil)

// NewGRPCActuator dials the actuator daemon with a bounded timeout.
func NewGRPCActuator(ctx context.Context, addr string) (Actuator, func(), error) {
	dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	conn, err := grpc.DialContext(
		dctx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithReturnConnectionError(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dial actuator %s: %w", addr, err)
	}
	a := &grpcActuator{conn: conn, cli: pb.NewActuatorServiceClient(conn)}
	closeFn := func() { _ = conn.Close() }
	return a, closeFn, nil
}

func (a *grpcActuator) Trigger(ctx context.Context, reason string) error {
	resp, err := a.cli.Trigger(ctx, &pb.TriggerRequest{Reason: reason})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("actuator trigger refused: %s", resp.GetMessage())
	}
	log.Printf("actuator: trigger accepted (ticket=%s)", resp.GetTicketId())
	return nil
}

func (a *grpcActuator) Reset(ctx context.Context) error {
	resp, err := a.cli.Reset(ctx, &pb.ResetRequest{})
	if err != nil {
		return err
	}
	if !resp.GetSuccess() {
		return fmt.Errorf("actuator reset refused: %s", resp.GetMessage())
	}
	return nil
}

// LogActuator is a stand-in used when no daemon is reachable (dev mode): it
// only logs the physical actions.
type LogActuator struct{}

func (LogActuator) Trigger(_ context.Context, reason string) error {
	log.Printf("actuator(mock): buzzer ON, door unlocked (reason=%s)", reason)
	return nil
}

func (LogActuator) Reset(_ context.Context) error {
	log.Printf("actuator(mock): buzzer OFF, door secured")
	return nil
}
