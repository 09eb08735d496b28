package system

import "time"

// DefaultMaxStep bounds a single frame delta in seconds
const DefaultMaxStep = 0.05

// Clock converts wall-clock time into bounded per-frame deltas.
// A stall (window hidden, debugger pause) costs at most maxStep of game time.
type Clock struct {
	now      func() time.Time
	last     time.Time
	maxStep  float64
	gameTime float64
}

// NewClock creates a clock that starts measuring now.
// Non-positive maxStep falls back to DefaultMaxStep.
func NewClock(maxStep float64) *Clock {
	return NewClockWithSource(maxStep, time.Now)
}

// NewClockWithSource creates a clock reading time from now
func NewClockWithSource(maxStep float64, now func() time.Time) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{
		now:     now,
		last:    now(),
		maxStep: maxStep,
	}
}

// Tick returns the seconds elapsed since the previous tick, clamped to [0, maxStep]
func (c *Clock) Tick() float64 {
	current := c.now()
	delta := current.Sub(c.last).Seconds()
	c.last = current

	if delta < 0 {
		delta = 0
	}
	if delta > c.maxStep {
		delta = c.maxStep
	}
	c.gameTime += delta
	return delta
}

// GameTime returns the sum of all deltas handed out so far
func (c *Clock) GameTime() float64 {
	return c.gameTime
}

// MaxStep returns the delta bound
func (c *Clock) MaxStep() float64 {
	return c.maxStep
}
