package entities

import "time"

// AlertPhase indicates whether an emergency is currently active.
type AlertPhase string

const (
	PhaseIdle   AlertPhase = "idle"
	PhaseActive AlertPhase = "active"
)

// EmergencyState is the single source of truth for the alert lifecycle.
// Exactly one logical instance exists per gateway process; all mutation goes
// through the state machine's serialized entry points.
type EmergencyState struct {
	Phase        AlertPhase    `json:"phase"`
	ActivatedAt  time.Time     `json:"activated_at,omitempty"`
	HoldDuration time.Duration `json:"hold_duration"`
}
