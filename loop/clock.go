package loop

import "time"

// Clock reports seconds elapsed since it started.
type Clock interface {
	Elapsed() float64
}

// SystemClock is a monotonic wall clock that starts on its first reading.
type SystemClock struct {
	start   time.Time
	started bool
	now     func() time.Time
}

// NewClock creates a system clock.
func NewClock() *SystemClock {
	return &SystemClock{now: time.Now}
}

// Elapsed returns seconds since the first call.
func (c *SystemClock) Elapsed() float64 {
	t := c.now()
	if !c.started {
		c.start = t
		c.started = true
	}
	return t.Sub(c.start).Seconds()
}

// ManualClock is advanced explicitly; used for headless rendering and tests.
type ManualClock struct {
	T float64
}

// Elapsed returns the current manual time.
func (c *ManualClock) Elapsed() float64 {
	return c.T
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float64) {
	c.T += dt
}
