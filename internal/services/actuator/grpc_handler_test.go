package actuator

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/eldersafe/gateway/grpc/gen/go/actuator"
	"github.com/eldersafe/gateway/internal/model"
)

type fakeHardware struct {
	alarmOnErr, unlockErr error
	calls                 []string
}

func (h *fakeHardware) AlarmOn() error {
	h.calls = append(h.calls, "alarmOn")
	return h.alarmOnErr
}

func (h *fakeHardware) AlarmOff() error {
	h.calls = append(h.calls, "alarmOff")
	return nil
}

func (h *fakeHardware) UnlockDoor() error {
	h.calls = append(h.calls, "unlockDoor")
	return h.unlockErr
}

func (h *fakeHardware) LockDoor() error {
	h.calls = append(h.calls, "lockDoor")
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	qos      []byte
	payloads [][]byte
}

func (p *recordingPublisher) PublishMessage(payload []byte) error {
	return p.PublishTo("", 0, false, payload)
}

func (p *recordingPublisher) PublishTo(topic string, qos byte, _ bool, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.qos = append(p.qos, qos)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *recordingPublisher) Close() {}

func TestTriggerActivatesBothPrimitives(t *testing.T) {
	hw := &fakeHardware{}
	pub := &recordingPublisher{}
	h := NewGrpcHandler(hw, pub, "elder/event/actuationResult")

	res, err := h.Trigger(context.Background(), &pb.TriggerRequest{Reason: "motion-failopen"})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.TicketId)
	assert.Equal(t, []string{"alarmOn", "unlockDoor"}, hw.calls)

	st, err := h.Status(context.Background(), &pb.StatusRequest{})
	require.NoError(t, err)
	assert.True(t, st.AlarmOn)
	assert.True(t, st.DoorUnlocked)

	require.Len(t, pub.payloads, 1)
	assert.Equal(t, "elder/event/actuationResult", pub.topics[0])
	assert.Equal(t, byte(1), pub.qos[0])

	var evt model.ActuationResultEvent
	require.NoError(t, json.Unmarshal(pub.payloads[0], &evt))
	assert.Equal(t, res.TicketId, evt.TicketID)
	assert.Equal(t, model.ActionTrigger, evt.Action)
	assert.Equal(t, "OK", evt.Status)
}

func TestTriggerPartialFailureStillUnlocksDoor(t *testing.T) {
	hw := &fakeHardware{alarmOnErr: errors.New("buzzer stuck")}
	pub := &recordingPublisher{}
	h := NewGrpcHandler(hw, pub, "elder/event/actuationResult")

	res, err := h.Trigger(context.Background(), &pb.TriggerRequest{Reason: "vision"})

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "buzzer stuck")
	assert.Contains(t, hw.calls, "unlockDoor", "door unlock runs even when the alarm fails")

	var evt model.ActuationResultEvent
	require.NoError(t, json.Unmarshal(pub.payloads[0], &evt))
	assert.Equal(t, "FAIL", evt.Status)
	assert.Contains(t, evt.Reason, "buzzer stuck")
}

func TestResetSecuresAndReports(t *testing.T) {
	hw := &fakeHardware{}
	pub := &recordingPublisher{}
	h := NewGrpcHandler(hw, pub, "elder/event/actuationResult")

	_, err := h.Trigger(context.Background(), &pb.TriggerRequest{Reason: "vision"})
	require.NoError(t, err)

	res, err := h.Reset(context.Background(), &pb.ResetRequest{TicketId: "ticket-1"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "ticket-1", res.TicketId)

	st, _ := h.Status(context.Background(), &pb.StatusRequest{})
	assert.False(t, st.AlarmOn)
	assert.False(t, st.DoorUnlocked)

	require.Len(t, pub.payloads, 2)
	var evt model.ActuationResultEvent
	require.NoError(t, json.Unmarshal(pub.payloads[1], &evt))
	assert.Equal(t, model.ActionReset, evt.Action)
	assert.Equal(t, "ticket-1", evt.TicketID)
}

func TestResetWithoutTicketMintsOne(t *testing.T) {
	h := NewGrpcHandler(&fakeHardware{}, &recordingPublisher{}, "elder/event/actuationResult")

	res, err := h.Reset(context.Background(), &pb.ResetRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, res.TicketId)
}
