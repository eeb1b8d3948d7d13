package testutil

import "sync"

// StepClock is a monotonic step counter for transcript sequencing.
//
// Unlike wall clocks it is deterministic: the same scenario numbered by
// the same clock produces identical seq values on every run. Resettable
// so a scenario can be replayed within one process.
//
// Safe for concurrent use via internal mutex.
type StepClock struct {
	mu  sync.Mutex
	seq int64
}

// NewStepClock creates a clock starting at 0; the first Next returns 1.
func NewStepClock() *StepClock {
	return &StepClock{}
}

// Next increments and returns the next step number.
func (c *StepClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current step number without incrementing.
func (c *StepClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset restarts the clock at 0.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
