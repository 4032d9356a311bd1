package main

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertsCacheEmpty(t *testing.T) {
	var c alertsCache

	_, ok := c.get()
	assert.False(t, ok)
}

func TestAlertsCacheKeepsLastGood(t *testing.T) {
	var c alertsCache

	c.put([]AlertDTO{{Active: true, Reason: "motion-failopen", Time: "2026-08-27T10:00:00Z"}})
	got, ok := c.get()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "motion-failopen", got[0].Reason)

	c.put([]AlertDTO{})
	got, ok = c.get()
	require.True(t, ok, "an empty successful response still replaces the cache")
	assert.Empty(t, got)
}

func TestAlertsCacheConcurrentAccess(t *testing.T) {
	var c alertsCache
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.put([]AlertDTO{{Reason: fmt.Sprintf("r%d", n)}})
		}(i)
		go func() {
			defer wg.Done()
			if got, ok := c.get(); ok {
				_ = got
			}
		}()
	}
	wg.Wait()

	got, ok := c.get()
	require.True(t, ok)
	assert.Len(t, got, 1)
}
