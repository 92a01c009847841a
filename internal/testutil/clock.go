// Package testutil provides deterministic helpers shared by tests.
package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic wall-clock source for tests.
//
// Each call to Now returns the current time and advances it by a fixed
// step, so repeated runs of the same test see identical timestamps in
// identical order.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type StepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepClock creates a clock that starts at start and advances by step
// per Now call. A zero step yields a frozen clock.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{now: start, step: step}
}

// Now returns the current time and advances the clock.
// Pass this method as the engine's WithNow option.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Reset rewinds the clock to start for test reuse.
func (c *StepClock) Reset(start time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = start
}
