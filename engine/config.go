package engine

import (
	"time"

	"github.com/lixenwraith/flipmatch/constants"
)

// Config holds the flip-protocol timing knobs. The defaults reproduce the
// reference pacing; overrides must keep feedback-start before
// reset-complete, which Normalize enforces.
type Config struct {
	// RevealHold is how long a mismatched pair stays face-up before
	// mismatch feedback begins
	RevealHold time.Duration

	// MismatchReset is the additional delay, after RevealHold, before a
	// mismatched pair flips back and input unlocks
	MismatchReset time.Duration

	// MatchPacing is the additional delay, after RevealHold, before an
	// automated driver may begin the next pair following a match
	MatchPacing time.Duration

	// FeedbackPulse is how long the good marker stays on a matched pair
	FeedbackPulse time.Duration
}

// DefaultConfig returns the reference timing
func DefaultConfig() Config {
	return Config{
		RevealHold:    constants.RevealHoldDuration,
		MismatchReset: constants.MismatchResetDelay,
		MatchPacing:   constants.MatchPacingDelay,
		FeedbackPulse: constants.FeedbackPulseDuration,
	}
}

// Normalize replaces non-positive durations with defaults, preserving the
// required ordering (feedback starts strictly before the reset completes)
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.RevealHold <= 0 {
		c.RevealHold = def.RevealHold
	}
	if c.MismatchReset <= 0 {
		c.MismatchReset = def.MismatchReset
	}
	if c.MatchPacing <= 0 {
		c.MatchPacing = def.MatchPacing
	}
	if c.FeedbackPulse <= 0 {
		c.FeedbackPulse = def.FeedbackPulse
	}
	return c
}
