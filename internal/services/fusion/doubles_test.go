package fusion

import (
	"context"
	"errors"
	"sync"

	"github.com/eldersafe/gateway/internal/model"
)

// fakePublisher records everything published through it.
type fakePublisher struct {
	mu       sync.Mutex
	messages [][]byte
	topics   []string
	qos      []byte
	failWith error
}

func (f *fakePublisher) PublishMessage(payload []byte) error {
	return f.PublishTo("", 0, false, payload)
}

func (f *fakePublisher) PublishTo(topic string, qos byte, _ bool, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	f.messages = append(f.messages, cp)
	f.topics = append(f.topics, topic)
	f.qos = append(f.qos, qos)
	return nil
}

func (f *fakePublisher) Close() {}

func (f *fakePublisher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakePublisher) last() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return nil
	}
	return f.messages[len(f.messages)-1]
}

// fakeActuator counts trigger/reset calls and can simulate hardware faults.
type fakeActuator struct {
	mu       sync.Mutex
	triggers int
	resets   int
	fail     bool
	done     chan struct{} // closed-ish signal: one tick per call
}

func newFakeActuator() *fakeActuator {
	return &fakeActuator{done: make(chan struct{}, 16)}
}

func (a *fakeActuator) Trigger(_ context.Context, _ string) error {
	a.mu.Lock()
	a.triggers++
	fail := a.fail
	a.mu.Unlock()
	a.done <- struct{}{}
	if fail {
		return errors.New("alarm relay jammed")
	}
	return nil
}

func (a *fakeActuator) Reset(_ context.Context) error {
	a.mu.Lock()
	a.resets++
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *fakeActuator) counts() (int, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.triggers, a.resets
}

// fakeEnvSensor returns a queued sample or error per call.
type fakeEnvSensor struct {
	mu     sync.Mutex
	sample model.EnvSample
	err    error
	reads  int
}

func (s *fakeEnvSensor) Read(_ context.Context) (model.EnvSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return s.sample, s.err
}

func ptr(f float64) *float64 { return &f }
