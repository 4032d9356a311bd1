package fusion

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/eldersafe/gateway/internal/model"
)

// Actuator is the physical emergency collaborator (alarm + door lock).
// Implementations must be safe for concurrent use.
type Actuator interface {
	Trigger(ctx context.Context, reason string) error
	Reset(ctx context.Context) error
}

// StateMachine owns the emergency lifecycle. It is the only component allowed
// to mutate the EmergencyState singleton, and it serializes every transition
// under one mutex so racing confirm signals can never double-fire actuation.
//
// Idle --Confirm--> Active fires actuation exactly once; further confirms
// while Active are no-ops and do not restart the hold timer. Active --> Idle
// is driven only by the hold timer expiry; no manual reset exists, which
// guarantees a minimum response window.
type StateMachine struct {
	mu          sync.Mutex
	phase       model.AlertPhase
	activatedAt time.Time
	timer       *time.Timer

	hold       time.Duration
	actTimeout time.Duration
	actuator   Actuator

	// emitMu is acquired before mu is released on a transition, so events are
	// published in the order the edges were taken even when the hold timer
	// fires immediately after a confirm
	emitMu   sync.Mutex
	onChange func(model.AlertStateEvent)

	// in-flight actuation calls; waited on at shutdown so the process never
	// exits mid-unlock
	inflight sync.WaitGroup
}

func NewStateMachine(actuator Actuator, hold time.Duration, onChange func(model.AlertStateEvent)) *StateMachine {
	if hold <= 0 {
		hold = 3 * time.Second
	}
	return &StateMachine{
		phase:      model.PhaseIdle,
		hold:       hold,
		actTimeout: 5 * time.Second,
		actuator:   actuator,
		onChange:   onChange,
	}
}

// Confirm requests the Idle->Active transition. Returns true only for the
// caller that actually took the edge.
func (s *StateMachine) Confirm(reason string) bool {
	s.mu.Lock()
	if s.phase == model.PhaseActive {
		s.mu.Unlock()
		log.Printf("statemachine: confirm (%s) while already active, no-op", reason)
		return false
	}
	now := time.Now()
	s.phase = model.PhaseActive
	s.activatedAt = now
	s.timer = time.AfterFunc(s.hold, s.autoReset)
	s.emitMu.Lock()
	s.mu.Unlock()

	log.Printf("statemachine: emergency ACTIVE (path=%s, hold=%s)", reason, s.hold)
	s.emit(model.AlertStateEvent{
		Phase:       model.PhaseActive,
		Reason:      reason,
		ActivatedAt: now,
		Timestamp:   now,
	})
	s.emitMu.Unlock()

	// State is logical, not contingent on hardware acknowledgment: an
	// actuation fault is logged and contained, never retried in a loop.
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.actTimeout)
		defer cancel()
		if err := s.actuator.Trigger(ctx, reason); err != nil {
			log.Printf("statemachine: actuation trigger failed: %v", err)
		}
	}()
	return true
}

// autoReset is invoked only by the hold timer.
func (s *StateMachine) autoReset() {
	s.mu.Lock()
	if s.phase != model.PhaseActive {
		s.mu.Unlock()
		return
	}
	s.phase = model.PhaseIdle
	s.activatedAt = time.Time{}
	s.timer = nil
	s.emitMu.Lock()
	s.mu.Unlock()

	now := time.Now()
	log.Printf("statemachine: hold elapsed, emergency reset to idle")
	s.emit(model.AlertStateEvent{Phase: model.PhaseIdle, Timestamp: now})
	s.emitMu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.actTimeout)
		defer cancel()
		if err := s.actuator.Reset(ctx); err != nil {
			log.Printf("statemachine: actuation reset failed: %v", err)
		}
	}()
}

// State returns a copy of the emergency singleton.
func (s *StateMachine) State() model.EmergencyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.EmergencyState{
		Phase:        s.phase,
		ActivatedAt:  s.activatedAt,
		HoldDuration: s.hold,
	}
}

// Stop waits for any in-flight actuation call to complete. It does not cancel
// a pending hold timer; only expiry may drive the Active->Idle edge.
func (s *StateMachine) Stop() {
	s.inflight.Wait()
}

func (s *StateMachine) emit(evt model.AlertStateEvent) {
	if s.onChange != nil {
		s.onChange(evt)
	}
}
