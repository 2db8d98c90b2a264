package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives a Governor without real sleeping. Sleeps advance the
// clock by the requested amount, as a blocking wait would.
type fakeClock struct {
	current time.Time
	slept   []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.current = c.current.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func governorWithClock(interval time.Duration, clock *fakeClock) *Governor {
	g := NewGovernor(interval)
	g.now = clock.now
	g.sleep = clock.sleep
	return g
}

func TestGovernor_Wait(t *testing.T) {
	t.Run("first call passes without waiting", func(t *testing.T) {
		clock := newFakeClock()
		g := governorWithClock(4*time.Second, clock)

		g.Wait()

		assert.Empty(t, clock.slept)
	})

	t.Run("second call waits out the remaining interval", func(t *testing.T) {
		clock := newFakeClock()
		g := governorWithClock(4*time.Second, clock)

		g.Wait()
		clock.advance(1 * time.Second)
		g.Wait()

		assert.Equal(t, []time.Duration{3 * time.Second}, clock.slept)
	})

	t.Run("consecutive calls start at least interval apart", func(t *testing.T) {
		clock := newFakeClock()
		g := governorWithClock(4*time.Second, clock)

		g.Wait()
		first := clock.current
		g.Wait()
		second := clock.current

		assert.GreaterOrEqual(t, second.Sub(first), 4*time.Second)
	})

	t.Run("no wait once the interval has already elapsed", func(t *testing.T) {
		clock := newFakeClock()
		g := governorWithClock(4*time.Second, clock)

		g.Wait()
		clock.advance(5 * time.Second)
		g.Wait()

		assert.Empty(t, clock.slept)
	})

	t.Run("zero interval disables throttling", func(t *testing.T) {
		clock := newFakeClock()
		g := governorWithClock(0, clock)

		g.Wait()
		g.Wait()
		g.Wait()

		assert.Empty(t, clock.slept)
	})
}
