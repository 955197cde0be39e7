package core

import "time"

// DefaultMaxFrame caps a single frame delta so a stall (window drag, debugger)
// does not teleport the player.
const DefaultMaxFrame = 100 * time.Millisecond

// FrameClock measures the time between frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
	max  time.Duration
}

// NewFrameClock returns a clock that clamps deltas to max. A non-positive max
// uses DefaultMaxFrame.
func NewFrameClock(max time.Duration) *FrameClock {
	if max <= 0 {
		max = DefaultMaxFrame
	}
	return &FrameClock{now: time.Now, max: max}
}

// Tick returns the seconds elapsed since the previous Tick. The first call
// returns 0.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if delta > c.max {
		delta = c.max
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Tick returns 0.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
