// ABOUTME: This file implements the single-slot rate governor for inference calls
// ABOUTME: Enforces a minimum interval between consecutive external requests
package ratelimit

import (
	"sync"
	"time"
)

// Governor enforces a minimum spacing between consecutive external calls,
// measured from the start of the previous call. It bounds call rate, not
// burst capacity: the state is a single last-call timestamp.
//
// A Governor belongs to one pipeline run rather than the process, so tests
// and concurrent runs stay isolated.
type Governor struct {
	interval time.Duration
	last     time.Time
	mu       sync.Mutex

	now   func() time.Time
	sleep func(time.Duration)
}

// NewGovernor creates a governor with the given minimum interval.
// A zero or negative interval disables throttling.
func NewGovernor(interval time.Duration) *Governor {
	return &Governor{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait blocks until the configured interval has elapsed since the previous
// call began, then records the start of the current call.
func (g *Governor) Wait() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.interval > 0 && !g.last.IsZero() {
		if elapsed := g.now().Sub(g.last); elapsed < g.interval {
			g.sleep(g.interval - elapsed)
		}
	}

	g.last = g.now()
}

// Interval reports the configured minimum spacing.
func (g *Governor) Interval() time.Duration {
	return g.interval
}
