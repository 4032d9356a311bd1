package fusion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eldersafe/gateway/internal/model"
)

func TestAwaitTimesOutToNil(t *testing.T) {
	f := NewFeed(time.Second, nil)

	start := time.Now()
	v := f.Await(context.Background(), 50*time.Millisecond)

	assert.Nil(t, v)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestAwaitReturnsFreshCachedReport(t *testing.T) {
	f := NewFeed(time.Minute, nil)
	f.Offer(&model.VisionReport{FallDetected: true, Confidence: ptr(0.8)})

	v := f.Await(context.Background(), 10*time.Millisecond)

	require.NotNil(t, v)
	assert.True(t, v.FallDetected)
}

func TestAwaitIgnoresStaleReport(t *testing.T) {
	f := NewFeed(20*time.Millisecond, nil)
	f.Offer(&model.VisionReport{FallDetected: true})
	time.Sleep(40 * time.Millisecond)

	v := f.Await(context.Background(), 10*time.Millisecond)
	assert.Nil(t, v)
}

func TestOfferWakesWaiter(t *testing.T) {
	f := NewFeed(time.Minute, nil)

	got := make(chan *model.VisionReport, 1)
	go func() {
		got <- f.Await(context.Background(), time.Second)
	}()

	time.Sleep(20 * time.Millisecond)
	f.Offer(&model.VisionReport{FallDetected: true, Emotions: "No Face"})

	select {
	case v := <-got:
		require.NotNil(t, v)
		assert.Equal(t, "No Face", v.Emotions)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never woke")
	}
}

func TestAwaitRespectsContextCancel(t *testing.T) {
	f := NewFeed(time.Minute, nil)
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	v := f.Await(ctx, time.Second)
	assert.Nil(t, v)
}

type stubProvider struct {
	report *model.VisionReport
	err    error
}

func (p *stubProvider) Assess(context.Context) (*model.VisionReport, error) {
	return p.report, p.err
}

func TestAwaitQueriesProvider(t *testing.T) {
	f := NewFeed(time.Minute, &stubProvider{report: &model.VisionReport{FallDetected: true, Confidence: ptr(0.7)}})

	v := f.Await(context.Background(), time.Second)

	require.NotNil(t, v)
	assert.True(t, v.FallDetected)
}

func TestOfferStampsAssessedAt(t *testing.T) {
	f := NewFeed(time.Minute, nil)
	f.Offer(&model.VisionReport{})

	v, ok := f.Latest()
	require.True(t, ok)
	assert.False(t, v.AssessedAt.IsZero())
}
