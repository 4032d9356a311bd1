package fusion

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldersafe/gateway/internal/model"
	"github.com/eldersafe/gateway/pkg/bus"
)

type fakeConsumer struct{ handler bus.Handler }

func (c *fakeConsumer) SetHandler(h bus.Handler)           { c.handler = h }
func (c *fakeConsumer) ConsumeMessage(ctx context.Context) { <-ctx.Done() }

func newTestService(t *testing.T, act Actuator, pub *fakePublisher) *Service {
	t.Helper()
	return NewService(&fakeConsumer{}, pub, act, nil, nil, nil, Options{
		GForceLimit:   2.5,
		ConfThreshold: 0.6,
		HoldDuration:  time.Hour,
		VisionWait:    60 * time.Millisecond,
		MotionTopic:   "elder/sensor/motion",
		CamTopic:      "elder/sensor/cam",
		CloudTopic:    "elder/cloud/motion",
		AlertTopic:    "elder/event/alert",
	})
}

func TestServiceMotionFailOpenConfirms(t *testing.T) {
	act := newFakeActuator()
	pub := &fakePublisher{}
	s := newTestService(t, act, pub)

	s.handleMotion([]byte(`{"g_force": 3.2, "mic": 700}`))

	waitCall(t, act)
	assert.Equal(t, model.PhaseActive, s.State().Phase)

	// one relay to the cloud topic, one QoS1 alert event
	require.GreaterOrEqual(t, pub.count(), 2)
	assert.Equal(t, "elder/cloud/motion", pub.topics[0])

	var evt model.AlertStateEvent
	require.NoError(t, json.Unmarshal(pub.last(), &evt))
	assert.Equal(t, model.PhaseActive, evt.Phase)
	assert.Equal(t, PathMotionFailOpen, evt.Reason)
	assert.Equal(t, byte(1), pub.qos[len(pub.qos)-1])

	s.sm.Stop()
}

func TestServiceVisionVetoSuppressesAlert(t *testing.T) {
	act := newFakeActuator()
	pub := &fakePublisher{}
	s := newTestService(t, act, pub)

	// a recent low-confidence report vetoes the motion trigger
	s.handleCam([]byte(`{"fall_detected": "1", "emotions": "No Face", "confidence": 0.4}`))
	s.handleMotion([]byte(`{"g_force": 3.2, "mic": 700}`))

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, model.PhaseIdle, s.State().Phase)
	triggers, _ := act.counts()
	assert.Equal(t, 0, triggers)
	s.sm.Stop()
}

func TestServiceCamOnlyConfirms(t *testing.T) {
	act := newFakeActuator()
	pub := &fakePublisher{}
	s := newTestService(t, act, pub)

	s.handleCam([]byte(`{"fall_detected": "1", "emotions": "No Face", "confidence": 0.9}`))

	waitCall(t, act)
	assert.Equal(t, model.PhaseActive, s.State().Phase)
	assert.Equal(t, AlertFall, s.View().Snapshot().CriticalAlert)
	s.sm.Stop()
}

func TestServiceCamUpdatesViewWithoutAlert(t *testing.T) {
	act := newFakeActuator()
	pub := &fakePublisher{}
	s := newTestService(t, act, pub)

	s.handleCam([]byte(`{"fall_detected": "0", "emotions": "Happy", "confidence": 0.2}`))

	snap := s.View().Snapshot()
	assert.Equal(t, "Happy", snap.Expression)
	require.NotNil(t, snap.Confidence)
	assert.Equal(t, 0.2, *snap.Confidence)
	assert.Equal(t, model.PhaseIdle, s.State().Phase)
	s.sm.Stop()
}

func TestServiceMotionBelowLimitOnlyRelays(t *testing.T) {
	act := newFakeActuator()
	pub := &fakePublisher{}
	s := newTestService(t, act, pub)

	s.handleMotion([]byte(`{"g_force": 1.01, "mic": 95}`))

	assert.Equal(t, 1, pub.count())
	assert.Equal(t, "elder/cloud/motion", pub.topics[0])
	assert.Equal(t, 1.01, s.View().Snapshot().GForceLatest)
	assert.Equal(t, model.PhaseIdle, s.State().Phase)
	s.sm.Stop()
}
