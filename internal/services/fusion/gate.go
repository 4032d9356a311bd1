package fusion

import (
	"log"

	"github.com/eldersafe/gateway/internal/model"
)

// Decision paths, reported in alert events and metrics.
const (
	PathMotionFailOpen     = "motion-failopen"
	PathMotionCorroborated = "motion-corroborated"
	PathVision             = "vision"
	PathVisionLegacy       = "vision-legacy"
)

// Decision is the gate's binary outcome plus the policy branch that produced it.
type Decision struct {
	Confirmed bool
	Path      string
}

// DecisionGate fuses the primary motion trigger with camera assessments
// against the confidence threshold.
//
// Policy: a primary trigger with no corroborating vision report within the
// bound confirms anyway (fail-open: absence of confirming vision must not
// suppress a motion-triggered alarm). Vision-only signals are gated behind
// the confidence floor. A report with no confidence field at all comes from
// a legacy producer and fall_detected alone is sufficient; this is a
// documented compatibility exception, not a bug.
type DecisionGate struct {
	confThreshold float64
}

func NewDecisionGate(confThreshold float64) *DecisionGate {
	return &DecisionGate{confThreshold: confThreshold}
}

// Decide evaluates one (primary trigger, vision) pair. vision may be nil.
func (g *DecisionGate) Decide(primaryTriggered bool, vision *model.VisionReport) Decision {
	if primaryTriggered {
		if vision == nil {
			log.Printf("gate: no vision report within bound, confirming on motion alone")
			return Decision{Confirmed: true, Path: PathMotionFailOpen}
		}
		if !vision.HasConfidence() {
			if vision.FallDetected {
				return Decision{Confirmed: true, Path: PathVisionLegacy}
			}
			return Decision{}
		}
		if vision.FallDetected && vision.ConfidenceClamped() >= g.confThreshold {
			return Decision{Confirmed: true, Path: PathMotionCorroborated}
		}
		log.Printf("gate: vision did not corroborate (fall=%v conf=%.2f < %.2f)",
			vision.FallDetected, vision.ConfidenceClamped(), g.confThreshold)
		return Decision{}
	}

	// camera-only path: no prior motion trigger
	if vision == nil || !vision.FallDetected {
		return Decision{}
	}
	if !vision.HasConfidence() {
		return Decision{Confirmed: true, Path: PathVisionLegacy}
	}
	if vision.ConfidenceClamped() >= g.confThreshold {
		return Decision{Confirmed: true, Path: PathVision}
	}
	return Decision{}
}
