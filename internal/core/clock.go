package core

import "time"

// MaxFrameDelta is the cap applied to the elapsed time between two animation
// callbacks. A backgrounded terminal can stall the tick loop for seconds; a
// raw delta that large would make continuous-time games tunnel through
// obstacles, so anything above the cap is treated as a single slow frame.
const MaxFrameDelta = 33 * time.Millisecond

// Clock supplies the per-tick elapsed duration for the simulation loop.
// It is purely transient per-instance state; pausing the loop just stops
// calling Tick, and Rearm discards the stall that accumulated meanwhile.
type Clock struct {
	last    time.Time
	started bool
}

// NewClock returns a clock that has not observed a tick yet.
func NewClock() *Clock {
	return &Clock{}
}

// Tick records an animation callback at the given wall-clock time and returns
// the elapsed seconds since the previous one, clamped to MaxFrameDelta.
// The first tick after creation or Rearm returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now

	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	return dt.Seconds()
}

// Rearm forgets the previous tick so the next one yields a zero delta.
// Called when the loop restarts after a pause or reset, so suspended time
// is never fed into an update step.
func (c *Clock) Rearm() {
	c.started = false
}
