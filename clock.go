package aureole

import "time"

// Clock reports elapsed seconds since the scene started.
type Clock interface {
	Elapsed() float64
}

// RealClock measures wall time with the monotonic clock. It starts on its
// first Elapsed call, so the first frame always sees zero.
type RealClock struct {
	start   time.Time
	started bool
	now     func() time.Time
}

// NewRealClock creates a stopped RealClock.
func NewRealClock() *RealClock {
	return &RealClock{now: time.Now}
}

// Elapsed returns seconds since the first call.
func (c *RealClock) Elapsed() float64 {
	t := c.now()
	if !c.started {
		c.start = t
		c.started = true
		return 0
	}
	return t.Sub(c.start).Seconds()
}

// ManualClock is a Clock whose time only moves when told to. It is used for
// deterministic ticks in tests and scripted runs.
type ManualClock struct {
	t float64
}

// Elapsed returns the current manual time.
func (c *ManualClock) Elapsed() float64 {
	return c.t
}

// Set jumps to t seconds.
func (c *ManualClock) Set(t float64) {
	c.t = t
}

// Advance moves time forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.t += dt
}
