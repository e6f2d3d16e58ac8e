package engine

import "time"

// Clock derives session elapsed time from a running anchor. Either the
// anchor is live (timer running) or the frozen duration is meaningful
// (timer stopped), never both.
//
// Tick exists purely for display refresh: its cadence may drift or be
// throttled by the host loop without corrupting the recorded completion
// time, which Stop always derives directly from the anchor.
type Clock struct {
	tp TimeProvider

	runningSince time.Time // zero when stopped
	frozenMs     int64     // accumulated elapsed while stopped
	displayMs    int64     // last Tick reading, display only
}

// NewClock creates a stopped clock backed by tp
func NewClock(tp TimeProvider) *Clock {
	return &Clock{tp: tp}
}

// Running reports whether the anchor is live
func (c *Clock) Running() bool {
	return !c.runningSince.IsZero()
}

// Start anchors the clock at the current time and zeroes elapsed.
// No-op while already running.
func (c *Clock) Start() {
	if c.Running() {
		return
	}
	c.runningSince = c.tp.Now()
	c.frozenMs = 0
	c.displayMs = 0
}

// resume re-arms the anchor without zeroing accumulated elapsed.
// Internal only; public callers go through Start.
func (c *Clock) resume() {
	if c.Running() {
		return
	}
	c.runningSince = c.tp.Now()
}

// Stop freezes elapsed to the anchor-to-now delta and clears the anchor.
// Returns the frozen elapsed milliseconds.
func (c *Clock) Stop() int64 {
	if c.Running() {
		c.frozenMs += c.tp.Now().Sub(c.runningSince).Milliseconds()
		c.runningSince = time.Time{}
		c.displayMs = c.frozenMs
	}
	return c.frozenMs
}

// Reset stops the clock and zeroes elapsed
func (c *Clock) Reset() {
	c.runningSince = time.Time{}
	c.frozenMs = 0
	c.displayMs = 0
}

// Tick recomputes the display reading from the anchor while running
func (c *Clock) Tick() {
	if c.Running() {
		c.displayMs = c.frozenMs + c.tp.Now().Sub(c.runningSince).Milliseconds()
	}
}

// ElapsedMs returns the display reading: the last Tick value while running,
// the frozen duration otherwise
func (c *Clock) ElapsedMs() int64 {
	if c.Running() {
		return c.displayMs
	}
	return c.frozenMs
}
