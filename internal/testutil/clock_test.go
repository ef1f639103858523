package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)

func TestClock_FirstReadingIsStart(t *testing.T) {
	clock := NewClock(epoch, time.Second)
	assert.Equal(t, epoch, clock.Now())
	assert.Equal(t, int64(1), clock.Readings())
}

func TestClock_AdvancesByStep(t *testing.T) {
	clock := NewClock(epoch, 2*time.Second)

	assert.Equal(t, epoch, clock.Now())
	assert.Equal(t, epoch.Add(2*time.Second), clock.Now())
	assert.Equal(t, epoch.Add(4*time.Second), clock.Now())
}

func TestClock_ZeroStepIsFrozen(t *testing.T) {
	clock := NewClock(epoch, 0)
	for i := 0; i < 3; i++ {
		assert.Equal(t, epoch, clock.Now())
	}
}

func TestClock_Reset(t *testing.T) {
	clock := NewClock(epoch, time.Second)
	clock.Now()
	clock.Now()

	clock.Reset()
	assert.Equal(t, int64(0), clock.Readings())
	assert.Equal(t, epoch, clock.Now())
}

func TestClock_ThreadSafe(t *testing.T) {
	clock := NewClock(epoch, time.Second)
	const numGoroutines = 50
	const callsPerGoroutine = 20

	var mu sync.Mutex
	seen := make(map[time.Time]bool)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerGoroutine; j++ {
				ts := clock.Now()
				mu.Lock()
				seen[ts] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, seen, numGoroutines*callsPerGoroutine, "every reading must be unique")
	assert.Equal(t, int64(numGoroutines*callsPerGoroutine), clock.Readings())
}
