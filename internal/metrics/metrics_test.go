package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 2*time.Millisecond)
}

func TestBackendStats(t *testing.T) {
	var s BackendStats

	s.Observe(20*time.Millisecond, false)
	s.Observe(80*time.Millisecond, true)
	s.Observe(10*time.Millisecond, false)
	s.Throttled.Inc()

	snap := s.Snapshot()
	assert.Equal(t, uint64(3), snap.Requests)
	assert.Equal(t, uint64(1), snap.Failures)
	assert.Equal(t, uint64(1), snap.Throttled)
	assert.Equal(t, 80*time.Millisecond, snap.Slowest)
}
