package actuator

import "log"

// Hardware abstracts the GPIO primitives. The real implementation drives a
// buzzer and a door servo; this package only sequences them.
type Hardware interface {
	AlarmOn() error
	AlarmOff() error
	UnlockDoor() error
	LockDoor() error
}

// MockHardware logs the physical actions, for environments without GPIO.
type MockHardware struct{}

func (MockHardware) AlarmOn() error {
	log.Printf("hardware(mock): buzzer ON")
	return nil
}

func (MockHardware) AlarmOff() error {
	log.Printf("hardware(mock): buzzer OFF")
	return nil
}

func (MockHardware) UnlockDoor() error {
	log.Printf("hardware(mock): door servo -> open")
	return nil
}

func (MockHardware) LockDoor() error {
	log.Printf("hardware(mock): door servo -> closed")
	return nil
}
