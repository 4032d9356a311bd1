package messages

import (
	"encoding/json"
	"time"
)

// EnvSample is one ambient reading. Temp/Humidity are nil when the sensor
// collaborator had no reading; an absent value is never synthesized as a
// false zero.
type EnvSample struct {
	Temp      *float64
	Humidity  *float64
	Smoke     bool
	Timestamp time.Time
}

// envWire matches the original payload: absent readings travel as "N/A",
// smoke as 0/1.
type envWire struct {
	Temp      any     `json:"temp"`
	Humidity  any     `json:"humidity"`
	Smoke     int     `json:"smoke"`
	Timestamp float64 `json:"timestamp"`
}

func (e EnvSample) MarshalJSON() ([]byte, error) {
	w := envWire{Temp: "N/A", Humidity: "N/A"}
	if e.Temp != nil {
		w.Temp = *e.Temp
	}
	if e.Humidity != nil {
		w.Humidity = *e.Humidity
	}
	if e.Smoke {
		w.Smoke = 1
	}
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	w.Timestamp = float64(ts.UnixNano()) / 1e9
	return json.Marshal(w)
}

func (e *EnvSample) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if f, ok := raw["temp"].(float64); ok {
		e.Temp = &f
	}
	if f, ok := raw["humidity"].(float64); ok {
		e.Humidity = &f
	}
	e.Smoke = ToFloat(raw["smoke"]) != 0
	if ts, ok := raw["timestamp"].(float64); ok {
		sec := int64(ts)
		e.Timestamp = time.Unix(sec, int64((ts-float64(sec))*1e9))
	}
	return nil
}
