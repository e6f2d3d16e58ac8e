package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// ClockTickInterval is the display-refresh cadence for the session clock.
	// Tick drift never affects recorded completion time, which is always
	// derived from the anchor-to-stop delta.
	ClockTickInterval = 400 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
