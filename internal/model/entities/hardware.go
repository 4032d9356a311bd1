package entities

// ActuatorAction names the physical cycle an actuation request refers to.
type ActuatorAction string

const (
	ActionTrigger ActuatorAction = "trigger" // alarm on, door unlocked
	ActionReset   ActuatorAction = "reset"   // alarm off, door re-secured
)
