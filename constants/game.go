package constants

import "time"

// Flip Protocol Timing
//
// The relative ordering matters: feedback starts before the mismatch reset
// completes, and the reset timer is the one that unlocks input. The shorter
// feedback timer only drives a cosmetic marker.
const (
	// RevealHoldDuration is how long a mismatched pair stays face-up before
	// mismatch feedback begins
	RevealHoldDuration = 650 * time.Millisecond

	// MismatchResetDelay is the additional delay, after RevealHoldDuration,
	// before a mismatched pair flips back and input unlocks. Total window
	// from the mismatch moment: RevealHoldDuration + MismatchResetDelay.
	MismatchResetDelay = 900 * time.Millisecond

	// MatchPacingDelay is the additional delay, after RevealHoldDuration,
	// before an automated driver may begin the next pair following a match.
	// Human input is never gated by this; matches clear synchronously.
	MatchPacingDelay = 300 * time.Millisecond

	// FeedbackPulseDuration is how long the transient good/bad marker stays
	// visible on a resolved pair
	FeedbackPulseDuration = 500 * time.Millisecond
)

// AutoSolver Pacing
const (
	// SolverRevealGap is the pause between the first and second reveal of a
	// pair submitted by the solver
	SolverRevealGap = 120 * time.Millisecond

	// SolverMaxTurns bounds solver iterations; a structurally consistent deck
	// never needs more than one turn per pair
	SolverMaxTurns = 256
)
