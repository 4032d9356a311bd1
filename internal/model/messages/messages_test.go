package messages

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestMotionDataLenientDecode(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		gForce  float64
		mic     float64
	}{
		{"numbers", `{"g_force": 2.7, "mic": 512}`, 2.7, 512},
		{"numeric strings", `{"g_force": "2.7", "mic": "512"}`, 2.7, 512},
		{"comma decimal", `{"g_force": "2,7"}`, 2.7, 0},
		{"missing fields", `{}`, 0, 0},
		{"null fields", `{"g_force": null, "mic": null}`, 0, 0},
		{"wrong types", `{"g_force": [1], "mic": {"a": 2}}`, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var md MotionData
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &md))
			assert.Equal(t, tc.gForce, md.GForce)
			assert.Equal(t, tc.mic, md.Mic)
		})
	}
}

func TestMotionDataRejectsNonObject(t *testing.T) {
	var md MotionData
	assert.Error(t, json.Unmarshal([]byte(`not json`), &md))
}

func TestVisionReportDecode(t *testing.T) {
	var v VisionReport
	require.NoError(t, json.Unmarshal([]byte(`{"fall_detected": "1", "emotions": "No Face", "confidence": 0.83}`), &v))
	assert.True(t, v.FallDetected)
	assert.Equal(t, "No Face", v.Emotions)
	require.True(t, v.HasConfidence())
	assert.Equal(t, 0.83, *v.Confidence)

	// legacy producer: no confidence key at all
	v = VisionReport{}
	require.NoError(t, json.Unmarshal([]byte(`{"fall_detected": "0", "emotions": "Happy"}`), &v))
	assert.False(t, v.FallDetected)
	assert.False(t, v.HasConfidence())
}

func TestVisionReportFallDetectedVariants(t *testing.T) {
	for payload, want := range map[string]bool{
		`{"fall_detected": "1"}`:    true,
		`{"fall_detected": "0"}`:    false,
		`{"fall_detected": true}`:   true,
		`{"fall_detected": false}`:  false,
		`{"fall_detected": 1}`:      true,
		`{"fall_detected": 0}`:      false,
		`{"fall_detected": "true"}`: true,
		`{}`:                        false,
	} {
		var v VisionReport
		require.NoError(t, json.Unmarshal([]byte(payload), &v), payload)
		assert.Equal(t, want, v.FallDetected, payload)
	}
}

func TestVisionReportConfidenceClamped(t *testing.T) {
	assert.Equal(t, 0.0, (&VisionReport{}).ConfidenceClamped())
	assert.Equal(t, 0.5, (&VisionReport{Confidence: f(0.5)}).ConfidenceClamped())
	assert.Equal(t, 1.0, (&VisionReport{Confidence: f(42)}).ConfidenceClamped())
	assert.Equal(t, 0.0, (&VisionReport{Confidence: f(-3)}).ConfidenceClamped())
}

func TestVisionReportWireRoundTrip(t *testing.T) {
	out, err := json.Marshal(VisionReport{FallDetected: true, Emotions: "Sad", Confidence: f(0.7)})
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(out, &wire))
	assert.Equal(t, "1", wire["fall_detected"], "wire format carries fall_detected as a string flag")

	var back VisionReport
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.FallDetected)
	assert.Equal(t, 0.7, *back.Confidence)
}

func TestEnvSampleMarshalAbsent(t *testing.T) {
	out, err := json.Marshal(EnvSample{Timestamp: time.Unix(1700000000, 0)})
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(out, &wire))
	assert.Equal(t, "N/A", wire["temp"])
	assert.Equal(t, "N/A", wire["humidity"])
	assert.Equal(t, 0.0, wire["smoke"])
	assert.Equal(t, 1700000000.0, wire["timestamp"])
}

func TestEnvSampleMarshalPresent(t *testing.T) {
	out, err := json.Marshal(EnvSample{Temp: f(23.4), Humidity: f(51.0), Smoke: true, Timestamp: time.Unix(1700000000, 500000000)})
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(out, &wire))
	assert.Equal(t, 23.4, wire["temp"])
	assert.Equal(t, 51.0, wire["humidity"])
	assert.Equal(t, 1.0, wire["smoke"])
	assert.InDelta(t, 1700000000.5, wire["timestamp"], 0.001)
}

func TestEnvSampleUnmarshal(t *testing.T) {
	var e EnvSample
	require.NoError(t, json.Unmarshal([]byte(`{"temp": 20.1, "humidity": "N/A", "smoke": 1, "timestamp": 1700000000.25}`), &e))
	require.NotNil(t, e.Temp)
	assert.Equal(t, 20.1, *e.Temp)
	assert.Nil(t, e.Humidity, `"N/A" decodes to an absent reading`)
	assert.True(t, e.Smoke)
	assert.Equal(t, int64(1700000000), e.Timestamp.Unix())
}
