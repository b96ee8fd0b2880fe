// Package tsidtest provides deterministic stand-ins for the clock and the
// random source of a tsid.Generator, so tests can pin every bit of a
// generated identifier.
package tsidtest

import (
	"sync"
	"time"

	"github.com/theory-cloud/tsid"
)

// ManualClock is a clock that only moves when told to. It is safe for
// concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ tsid.Clock = (*ManualClock)(nil)

// NewManualClock returns a clock frozen at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set jumps the clock to now, forwards or backwards.
func (c *ManualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d and returns the new time. Negative
// durations move it backwards.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// StaticRandom returns a source that always yields v. The generator masks
// the value to the width it asked for.
func StaticRandom(v uint32) tsid.RandomFunc {
	return func(int) uint32 { return v }
}

// SequenceRandom returns a source that yields vs in order and then keeps
// repeating the last value. An empty sequence yields zero. The source is
// safe for concurrent use.
func SequenceRandom(vs ...uint32) tsid.RandomFunc {
	var mu sync.Mutex
	i := 0
	return func(int) uint32 {
		mu.Lock()
		defer mu.Unlock()
		if len(vs) == 0 {
			return 0
		}
		v := vs[i]
		if i < len(vs)-1 {
			i++
		}
		return v
	}
}
