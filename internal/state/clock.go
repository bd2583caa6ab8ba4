package state

import "sync/atomic"

// Clock is a monotonically increasing revision counter. Every store mutation
// ticks it so that persisted copies can be ordered.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Now returns the current value without advancing it.
func (c *Clock) Now() uint64 {
	return c.counter.Load()
}
