package messages

import (
	"time"

	"github.com/eldersafe/gateway/internal/model/entities"
)

// AlertStateEvent is published on every Idle<->Active edge of the emergency
// state machine so the central system can follow the alert lifecycle.
type AlertStateEvent struct {
	Phase       entities.AlertPhase `json:"phase"`
	Reason      string              `json:"reason,omitempty"` // decision path that confirmed
	ActivatedAt time.Time           `json:"activated_at,omitempty"`
	Timestamp   time.Time           `json:"timestamp"`
}

// ActuationResultEvent is published by the actuator daemon at the end of each
// trigger/reset cycle, whether it succeeded or not.
type ActuationResultEvent struct {
	TicketID  string                  `json:"ticket_id"`
	Action    entities.ActuatorAction `json:"action"`
	Status    string                  `json:"status"` // "OK" | "FAIL"
	Reason    string                  `json:"reason,omitempty"`
	StartedAt time.Time               `json:"started_at"`
	Timestamp time.Time               `json:"timestamp"`
}
