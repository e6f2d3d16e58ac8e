// Package solver drives a puzzle session to completion through the same
// public reveal surface human input uses. It exists to exercise the whole
// engine end-to-end without simulated human timing variance.
package solver

import (
	"errors"
	"time"

	"github.com/lixenwraith/flipmatch/constants"
	"github.com/lixenwraith/flipmatch/engine"
)

// ErrNoRevealablePair signals a structurally inconsistent deck: no
// unmatched pair remains although victory is false. Stop condition, not a
// crash.
var ErrNoRevealablePair = errors.New("solver: no revealable pair though victory is false")

// ErrTurnBudgetExceeded guards against an unreachable puzzle state
var ErrTurnBudgetExceeded = errors.New("solver: turn budget exceeded")

// Solver feeds deterministic pairs through the session's public protocol.
// It never bypasses Reveal, so solver runs exercise the real contract.
type Solver struct {
	session *engine.Session
	cfg     engine.Config

	turns         int
	pendingSecond int // second reveal of the in-flight pair, -1 when none
	nextActionAt  time.Time
}

// New creates a solver over session using the session's protocol timing
func New(session *engine.Session, cfg engine.Config) *Solver {
	return &Solver{
		session:       session,
		cfg:           cfg.Normalize(),
		pendingSecond: -1,
	}
}

// Turns returns the number of pairs submitted so far
func (sv *Solver) Turns() int {
	return sv.turns
}

// Step performs at most one action at the given instant: the second reveal
// of an in-flight pair, or the first reveal of the next scanned pair. It
// waits out lock windows and the post-match pacing by deferring to a later
// deadline. Returns done=true on victory or on a terminal error.
//
// The host is responsible for calling session.Update before each Step so
// scheduled mismatch deadlines have been applied.
func (sv *Solver) Step(now time.Time) (bool, error) {
	if sv.session.Victory() {
		return true, nil
	}
	if now.Before(sv.nextActionAt) {
		return false, nil
	}

	// Mid-pair: submit the second reveal, then pace before the next pair
	if sv.pendingSecond >= 0 {
		index := sv.pendingSecond
		sv.pendingSecond = -1
		sv.session.Reveal(index)
		if sv.session.Victory() {
			return true, nil
		}
		if sv.session.Locked() {
			// The scan only submits true pairs, so a lock here means the
			// deck shifted under us; wait out the mismatch window
			sv.nextActionAt = now.Add(sv.cfg.RevealHold + sv.cfg.MismatchReset)
		} else {
			sv.nextActionAt = now.Add(sv.cfg.RevealHold + sv.cfg.MatchPacing)
		}
		return false, nil
	}

	// Locked from a previous turn: retry after one mismatch-reset interval
	if sv.session.Locked() {
		sv.nextActionAt = now.Add(sv.cfg.RevealHold + sv.cfg.MismatchReset)
		return false, nil
	}

	first, second := sv.scanPair()
	if first < 0 {
		return true, ErrNoRevealablePair
	}

	sv.turns++
	if sv.turns > constants.SolverMaxTurns {
		return true, ErrTurnBudgetExceeded
	}

	if !sv.session.Reveal(first) {
		// Rejected first reveal outside a lock window means inconsistent
		// upstream state; surface it as exhaustion
		return true, ErrNoRevealablePair
	}
	sv.pendingSecond = second
	sv.nextActionAt = now.Add(constants.SolverRevealGap)
	return false, nil
}

// scanPair finds deterministically, left to right, the first unmatched
// position and its partner. Deck construction guarantees the partner of an
// unmatched position is itself unmatched.
func (sv *Solver) scanPair() (int, int) {
	d := sv.session.Deck()
	for i := 0; i < len(d); i++ {
		if sv.session.IsMatched(i) {
			continue
		}
		for j := i + 1; j < len(d); j++ {
			if !sv.session.IsMatched(j) && d[j] == d[i] {
				return i, j
			}
		}
		// Unmatched position with no partner: structural inconsistency
		return -1, -1
	}
	return -1, -1
}

// Run drives the session to victory or bounded failure using tp as the
// time source, advancing via Update between steps. With a real time
// provider it sleeps between polls; a mock provider is advanced directly
// so tests run instantly.
func (sv *Solver) Run(tp engine.TimeProvider) error {
	mock, _ := tp.(*engine.MockTimeProvider)

	for {
		now := tp.Now()
		sv.session.Update(now)

		done, err := sv.Step(now)
		if done {
			return err
		}

		if mock != nil {
			if wait := sv.nextActionAt.Sub(now); wait > 0 {
				mock.Advance(wait)
			} else {
				mock.Advance(time.Millisecond)
			}
			continue
		}

		if wait := sv.nextActionAt.Sub(now); wait > 0 {
			time.Sleep(wait)
		} else {
			time.Sleep(time.Millisecond)
		}
	}
}
