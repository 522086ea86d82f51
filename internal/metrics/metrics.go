// Package metrics holds the in-process counters reported on /health.
package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() { c.value.Add(1) }

func (c *Counter) Load() uint64 { return c.value.Load() }

// Timer measures the time since it was started.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

func (t Timer) Duration() time.Duration {
	return time.Since(t.start)
}
