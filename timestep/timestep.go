package timestep

import "time"

const (
	// FixedDelta is the physics step length in seconds (50 Hz).
	FixedDelta = 0.02
	// MaxFrameDelta caps a single frame so a stall does not trigger a burst
	// of catch-up physics steps.
	MaxFrameDelta = 1.0 / 3.0
)

// Clock measures elapsed time between frames.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock reading now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns seconds since the previous Tick. The first call returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Accumulator converts variable frame time into whole fixed steps.
type Accumulator struct {
	Step    float64
	pending float64
}

func NewAccumulator(step float64) *Accumulator {
	if step <= 0 {
		step = FixedDelta
	}
	return &Accumulator{Step: step}
}

// Advance adds dt and returns how many fixed steps are now due.
func (a *Accumulator) Advance(dt float64) int {
	if dt > 0 {
		a.pending += dt
	}
	n := 0
	for a.pending >= a.Step {
		a.pending -= a.Step
		n++
	}
	return n
}

// Pending returns the time carried into the next frame.
func (a *Accumulator) Pending() float64 { return a.pending }
