package model

import (
	"github.com/eldersafe/gateway/internal/model/entities"
	"github.com/eldersafe/gateway/internal/model/messages"
)

// Aliases exposing the common types to the services.

type (
	MotionData           = messages.MotionData
	VisionReport         = messages.VisionReport
	EnvSample            = messages.EnvSample
	AlertStateEvent      = messages.AlertStateEvent
	ActuationResultEvent = messages.ActuationResultEvent
	EmergencyState       = entities.EmergencyState
	AlertPhase           = entities.AlertPhase
	ActuatorAction       = entities.ActuatorAction
)

const (
	PhaseIdle     = entities.PhaseIdle
	PhaseActive   = entities.PhaseActive
	ActionTrigger = entities.ActionTrigger
	ActionReset   = entities.ActionReset
)
