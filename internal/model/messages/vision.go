package messages

import (
	"encoding/json"
	"strconv"
	"time"
)

// VisionReport is one camera-side fall assessment. Confidence is optional:
// legacy producers publish only fall_detected/emotions.
type VisionReport struct {
	FallDetected bool
	Emotions     string
	Confidence   *float64 // nil when the producer sent none
	AssessedAt   time.Time
}

// HasConfidence reports whether the producer included a confidence score.
func (v *VisionReport) HasConfidence() bool { return v.Confidence != nil }

// ConfidenceClamped returns the confidence clamped into [0,1]. Out-of-range
// values are never allowed to act as a trigger by construction.
func (v *VisionReport) ConfidenceClamped() float64 {
	if v.Confidence == nil {
		return 0
	}
	c := *v.Confidence
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// visionWire is the on-bus shape: fall_detected travels as "0"/"1".
type visionWire struct {
	FallDetected string   `json:"fall_detected"`
	Emotions     string   `json:"emotions,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
	Timestamp    *float64 `json:"timestamp,omitempty"`
}

func (v VisionReport) MarshalJSON() ([]byte, error) {
	w := visionWire{
		FallDetected: "0",
		Emotions:     v.Emotions,
		Confidence:   v.Confidence,
	}
	if v.FallDetected {
		w.FallDetected = "1"
	}
	return json.Marshal(w)
}

// UnmarshalJSON tolerates fall_detected as "0"/"1", bool or number, and
// confidence as number or numeric string.
func (v *VisionReport) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch t := raw["fall_detected"].(type) {
	case string:
		v.FallDetected = t == "1" || t == "true"
	case bool:
		v.FallDetected = t
	case float64:
		v.FallDetected = t != 0
	}
	if s, ok := raw["emotions"].(string); ok {
		v.Emotions = s
	}
	if c, ok := raw["confidence"]; ok {
		switch t := c.(type) {
		case float64:
			v.Confidence = &t
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				v.Confidence = &f
			}
		}
	}
	return nil
}
