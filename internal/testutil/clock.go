// Package testutil provides deterministic test doubles shared across
// packages.
package testutil

import (
	"sync"
	"time"
)

// DeterministicClock hands out strictly increasing timestamps for
// tests, so record ordering assertions never depend on wall time.
//
// Each call to Now advances the clock by the configured step. The
// clock can be reset for test reuse.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type DeterministicClock struct {
	mu    sync.Mutex
	base  time.Time
	step  time.Duration
	calls int
}

// NewDeterministicClock creates a clock starting at base, advancing by
// step on every Now call. The first call returns base + step.
func NewDeterministicClock(base time.Time, step time.Duration) *DeterministicClock {
	return &DeterministicClock{base: base, step: step}
}

// Now returns the next timestamp. Monotonic: each call returns a
// strictly later time than the one before.
func (c *DeterministicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.base.Add(time.Duration(c.calls) * c.step)
}

// Calls returns how many timestamps have been handed out.
func (c *DeterministicClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset rewinds the clock to its base. After Reset, the next call to
// Now returns base + step again.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}
