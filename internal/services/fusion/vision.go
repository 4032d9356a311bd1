package fusion

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/eldersafe/gateway/internal/model"
)

// Provider is the external camera pipeline: it produces a fall assessment on
// demand. The scoring algorithm behind it is opaque and replaceable.
type Provider interface {
	Assess(ctx context.Context) (*model.VisionReport, error)
}

// Feed caches the latest camera assessment and lets the motion path wait a
// bounded time for a corroborating report. Reports arrive either from the cam
// topic or from a direct Provider call.
type Feed struct {
	mu        sync.Mutex
	latest    *model.VisionReport
	freshness time.Duration
	waiters   map[chan *model.VisionReport]struct{}
	provider  Provider // optional on-box camera
}

func NewFeed(freshness time.Duration, provider Provider) *Feed {
	if freshness <= 0 {
		freshness = 3 * time.Second
	}
	return &Feed{
		freshness: freshness,
		waiters:   make(map[chan *model.VisionReport]struct{}),
		provider:  provider,
	}
}

// Offer stores a new assessment and wakes any bounded waiters.
func (f *Feed) Offer(v *model.VisionReport) {
	if v == nil {
		return
	}
	if v.AssessedAt.IsZero() {
		v.AssessedAt = time.Now()
	}
	f.mu.Lock()
	f.latest = v
	for ch := range f.waiters {
		select {
		case ch <- v:
		default:
		}
	}
	f.mu.Unlock()
}

// Latest returns the cached assessment if it is still fresh.
func (f *Feed) Latest() (*model.VisionReport, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil || time.Since(f.latest.AssessedAt) > f.freshness {
		return nil, false
	}
	return f.latest, true
}

// Await returns a fresh assessment within bound, or nil when none arrives in
// time. A nil return is what lets the gate fail open on the motion path.
func (f *Feed) Await(ctx context.Context, bound time.Duration) *model.VisionReport {
	if v, ok := f.Latest(); ok {
		return v
	}

	ch := make(chan *model.VisionReport, 1)
	f.mu.Lock()
	f.waiters[ch] = struct{}{}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		delete(f.waiters, ch)
		f.mu.Unlock()
	}()

	if f.provider != nil {
		go func() {
			pctx, cancel := context.WithTimeout(ctx, bound)
			defer cancel()
			v, err := f.provider.Assess(pctx)
			if err != nil {
				log.Printf("vision: provider assess failed: %v", err)
				return
			}
			f.Offer(v)
		}()
	}

	timer := time.NewTimer(bound)
	defer timer.Stop()
	select {
	case v := <-ch:
		return v
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return nil
	}
}
