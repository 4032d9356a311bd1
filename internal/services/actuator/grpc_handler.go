package actuator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	pb "github.com/eldersafe/gateway/grpc/gen/go/actuator"
	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
)

// GrpcHandler implements ActuatorService. Each trigger/reset cycle publishes
// an ActuationResultEvent (QoS1) so the rest of the system can audit what the
// hardware actually did.
type GrpcHandler struct {
	pb.UnimplementedActuatorServiceServer

	hw          Hardware
	publisher   bus.IPublisher
	resultTopic string

	mu           sync.Mutex
	alarmOn      bool
	doorUnlocked bool
}

func NewGrpcHandler(hw Hardware, publisher bus.IPublisher, resultTopic string) *GrpcHandler {
	return &GrpcHandler{
		hw:          hw,
		publisher:   publisher,
		resultTopic: resultTopic,
	}
}

// Trigger activates the alarm and releases the door lock. Partial hardware
// failure is reported in the result event but does not abort the remaining
// primitives: a stuck buzzer must not keep the door locked.
func (h *GrpcHandler) Trigger(_ context.Context, req *pb.TriggerRequest) (*pb.CommandResponse, error) {
	ticket := uuid.New().String()
	started := time.Now()
	log.Printf("actuator: emergency trigger (reason=%s ticket=%s)", req.GetReason(), ticket)

	var failReason string
	if err := h.hw.AlarmOn(); err != nil {
		failReason = fmt.Sprintf("alarm: %v", err)
		log.Printf("actuator: alarm on failed: %v", err)
	}
	if err := h.hw.UnlockDoor(); err != nil {
		if failReason != "" {
			failReason += "; "
		}
		failReason += fmt.Sprintf("door: %v", err)
		log.Printf("actuator: door unlock failed: %v", err)
	}

	h.mu.Lock()
	h.alarmOn = true
	h.doorUnlocked = true
	h.mu.Unlock()

	h.publishResult(ticket, model.ActionTrigger, failReason, started)

	if failReason != "" {
		return &pb.CommandResponse{Success: false, Message: failReason, TicketId: ticket}, nil
	}
	return &pb.CommandResponse{Success: true, Message: "emergency actuation active", TicketId: ticket}, nil
}

// Reset silences the alarm and re-secures the door.
func (h *GrpcHandler) Reset(_ context.Context, req *pb.ResetRequest) (*pb.CommandResponse, error) {
	ticket := req.GetTicketId()
	if ticket == "" {
		ticket = uuid.New().String()
	}
	started := time.Now()
	log.Printf("actuator: reset (ticket=%s)", ticket)

	var failReason string
	if err := h.hw.AlarmOff(); err != nil {
		failReason = fmt.Sprintf("alarm: %v", err)
		log.Printf("actuator: alarm off failed: %v", err)
	}
	if err := h.hw.LockDoor(); err != nil {
		if failReason != "" {
			failReason += "; "
		}
		failReason += fmt.Sprintf("door: %v", err)
		log.Printf("actuator: door lock failed: %v", err)
	}

	h.mu.Lock()
	h.alarmOn = false
	h.doorUnlocked = false
	h.mu.Unlock()

	h.publishResult(ticket, model.ActionReset, failReason, started)

	if failReason != "" {
		return &pb.CommandResponse{Success: false, Message: failReason, TicketId: ticket}, nil
	}
	return &pb.CommandResponse{Success: true, Message: "actuation reset", TicketId: ticket}, nil
}

// Status reports the current physical state.
func (h *GrpcHandler) Status(_ context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &pb.StatusResponse{AlarmOn: h.alarmOn, DoorUnlocked: h.doorUnlocked}, nil
}

func (h *GrpcHandler) publishResult(ticket string, action model.ActuatorAction, failReason string, started time.Time) {
	evt := model.ActuationResultEvent{
		TicketID:  ticket,
		Action:    action,
		Status:    "OK",
		StartedAt: started,
		Timestamp: time.Now(),
	}
	if failReason != "" {
		evt.Status = "FAIL"
		evt.Reason = failReason
	}
	b, err := json.Marshal(evt)
	if err != nil {
		log.Printf("actuator: marshal result: %v", err)
		return
	}
	if err := h.publisher.PublishTo(h.resultTopic, 1, false, b); err != nil {
		log.Printf("actuator: publish result: %v", err)
	}
}
