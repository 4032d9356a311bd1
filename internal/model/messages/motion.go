package messages

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// MotionData is one wearable impact/motion sample as it arrives on the bus.
// Immutable once constructed.
type MotionData struct {
	GForce     float64   `json:"g_force"`
	Mic        float64   `json:"mic"`
	SourceID   string    `json:"source_id,omitempty"`
	ReceivedAt time.Time `json:"received_at,omitempty"`
}

// UnmarshalJSON accepts g_force/mic as numbers or numeric strings; malformed
// or missing fields coerce to 0 so a bad sample never drops the pipeline.
func (m *MotionData) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m.GForce = ToFloat(raw["g_force"])
	m.Mic = ToFloat(raw["mic"])
	if v, ok := raw["source_id"].(string); ok {
		m.SourceID = v
	}
	return nil
}

// ToFloat converts numbers, bools and numeric strings to float64; anything
// else becomes 0.
func ToFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		if f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", "."), 64); err == nil {
			return f
		}
	}
	return 0
}
