package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// BackendStats counts calls made to the storefront backend.
type BackendStats struct {
	Requests  Counter
	Failures  Counter
	Throttled Counter

	slowest atomic.Int64
}

// Observe records one finished call.
func (s *BackendStats) Observe(d time.Duration, failed bool) {
	s.Requests.Inc()
	if failed {
		s.Failures.Inc()
	}
	for {
		cur := s.slowest.Load()
		if int64(d) <= cur || s.slowest.CompareAndSwap(cur, int64(d)) {
			return
		}
	}
}

// Snapshot is a point-in-time copy of BackendStats.
type Snapshot struct {
	Requests  uint64
	Failures  uint64
	Throttled uint64
	Slowest   time.Duration
}

func (s *BackendStats) Snapshot() Snapshot {
	return Snapshot{
		Requests:  s.Requests.Load(),
		Failures:  s.Failures.Load(),
		Throttled: s.Throttled.Load(),
		Slowest:   time.Duration(s.slowest.Load()),
	}
}
