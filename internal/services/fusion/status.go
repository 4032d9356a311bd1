package fusion

import (
	"strconv"
	"sync"
	"time"

	"github.com/eldersafe/gateway/internal/model"
)

// Display strings kept identical to the original dashboard contract.
const (
	AlertOK       = "ALERT_OK"
	AlertFall     = "FALL DETECTED"
	SmokeOK       = "SMOKE_OK"
	SmokeDetected = "SMOKE_DETECTED"
	ValueAbsent   = "N/A"
)

// Snapshot is the read-only view served to the status API and dashboard.
// Absent readings are rendered "N/A", never dropped: partial telemetry beats
// no telemetry in a safety monitor.
type Snapshot struct {
	Temperature   string               `json:"temperature"`
	Humidity      string               `json:"humidity"`
	SmokeStatus   string               `json:"smoke_status"`
	CriticalAlert string               `json:"critical_alert"`
	GForceLatest  float64              `json:"g_force_latest"`
	Expression    string               `json:"expression"`
	Confidence    *float64             `json:"confidence,omitempty"`
	UpdatedAt     map[string]time.Time `json:"updated_at"`
}

// StatusView aggregates the latest known value per field with its own
// last-update stamp. Writers are independent; last writer wins per field,
// no cross-field transactionality.
type StatusView struct {
	mu sync.RWMutex

	temperature   string
	humidity      string
	smokeStatus   string
	criticalAlert string
	gForceLatest  float64
	expression    string
	confidence    *float64

	stamps map[string]time.Time
}

func NewStatusView() *StatusView {
	return &StatusView{
		temperature:   ValueAbsent,
		humidity:      ValueAbsent,
		smokeStatus:   SmokeOK,
		criticalAlert: AlertOK,
		expression:    "Neutral",
		stamps:        make(map[string]time.Time),
	}
}

func formatReading(v *float64) string {
	if v == nil {
		return ValueAbsent
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// SetEnv records the latest ambient sample.
func (s *StatusView) SetEnv(sample model.EnvSample) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = formatReading(sample.Temp)
	s.humidity = formatReading(sample.Humidity)
	if sample.Smoke {
		s.smokeStatus = SmokeDetected
	} else {
		s.smokeStatus = SmokeOK
	}
	s.stamps["temperature"] = now
	s.stamps["humidity"] = now
	s.stamps["smoke_status"] = now
}

// SetGForce records the latest wearable impact magnitude.
func (s *StatusView) SetGForce(g float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gForceLatest = g
	s.stamps["g_force_latest"] = time.Now()
}

// SetVision records the latest camera expression/confidence.
func (s *StatusView) SetVision(expression string, confidence *float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if expression != "" {
		s.expression = expression
	}
	s.confidence = confidence
	s.stamps["expression"] = time.Now()
}

// SetAlert reflects the emergency phase into the display aggregate.
func (s *StatusView) SetAlert(phase model.AlertPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if phase == model.PhaseActive {
		s.criticalAlert = AlertFall
	} else {
		s.criticalAlert = AlertOK
	}
	s.stamps["critical_alert"] = time.Now()
}

// Snapshot returns a consistent copy for external consumers.
func (s *StatusView) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stamps := make(map[string]time.Time, len(s.stamps))
	for k, v := range s.stamps {
		stamps[k] = v
	}
	var conf *float64
	if s.confidence != nil {
		c := *s.confidence
		conf = &c
	}
	return Snapshot{
		Temperature:   s.temperature,
		Humidity:      s.humidity,
		SmokeStatus:   s.smokeStatus,
		CriticalAlert: s.criticalAlert,
		GForceLatest:  s.gForceLatest,
		Expression:    s.expression,
		Confidence:    conf,
		UpdatedAt:     stamps,
	}
}
