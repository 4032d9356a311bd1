package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eldersafe/gateway/internal/model"
)

func TestGateMotionWithoutVisionFailsOpen(t *testing.T) {
	g := NewDecisionGate(0.6)

	d := g.Decide(true, nil)

	assert.True(t, d.Confirmed)
	assert.Equal(t, PathMotionFailOpen, d.Path)
}

func TestGateMotionCorroboratedByConfidentVision(t *testing.T) {
	g := NewDecisionGate(0.6)

	d := g.Decide(true, &model.VisionReport{FallDetected: true, Confidence: ptr(0.9)})

	assert.True(t, d.Confirmed)
	assert.Equal(t, PathMotionCorroborated, d.Path)
}

func TestGateMotionVetoedByLowConfidence(t *testing.T) {
	g := NewDecisionGate(0.6)

	d := g.Decide(true, &model.VisionReport{FallDetected: true, Confidence: ptr(0.4)})

	assert.False(t, d.Confirmed)
}

func TestGateMotionVetoedByNoFall(t *testing.T) {
	g := NewDecisionGate(0.6)

	d := g.Decide(true, &model.VisionReport{FallDetected: false, Confidence: ptr(0.95)})

	assert.False(t, d.Confirmed)
}

func TestGateMotionWithLegacyVision(t *testing.T) {
	g := NewDecisionGate(0.6)

	// no confidence field at all: fall_detected alone decides
	d := g.Decide(true, &model.VisionReport{FallDetected: true})
	assert.True(t, d.Confirmed)
	assert.Equal(t, PathVisionLegacy, d.Path)

	d = g.Decide(true, &model.VisionReport{FallDetected: false})
	assert.False(t, d.Confirmed)
}

func TestGateThresholdIsInclusive(t *testing.T) {
	g := NewDecisionGate(0.6)

	d := g.Decide(false, &model.VisionReport{FallDetected: true, Confidence: ptr(0.6)})

	assert.True(t, d.Confirmed)
	assert.Equal(t, PathVision, d.Path)
}

func TestGateVisionOnly(t *testing.T) {
	g := NewDecisionGate(0.6)

	assert.False(t, g.Decide(false, nil).Confirmed)
	assert.False(t, g.Decide(false, &model.VisionReport{FallDetected: false, Confidence: ptr(0.99)}).Confirmed)
	assert.False(t, g.Decide(false, &model.VisionReport{FallDetected: true, Confidence: ptr(0.3)}).Confirmed)

	d := g.Decide(false, &model.VisionReport{FallDetected: true, Confidence: ptr(0.8)})
	assert.True(t, d.Confirmed)
	assert.Equal(t, PathVision, d.Path)

	d = g.Decide(false, &model.VisionReport{FallDetected: true})
	assert.True(t, d.Confirmed)
	assert.Equal(t, PathVisionLegacy, d.Path)
}

func TestGateClampsOutOfRangeConfidence(t *testing.T) {
	g := NewDecisionGate(0.6)

	// 7.5 clamps to 1.0, above threshold
	d := g.Decide(false, &model.VisionReport{FallDetected: true, Confidence: ptr(7.5)})
	assert.True(t, d.Confirmed)

	// -2 clamps to 0, below threshold
	d = g.Decide(false, &model.VisionReport{FallDetected: true, Confidence: ptr(-2.0)})
	assert.False(t, d.Confirmed)
}
