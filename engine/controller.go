package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/flipmatch/content"
	"github.com/lixenwraith/flipmatch/deck"
	"github.com/lixenwraith/flipmatch/events"
)

// Reveal is the public mutation surface for turning a card face-up.
//
// It is a silent no-op while locked, after victory, for a position already
// matched or already in the flip buffer, and for an out-of-range index.
// These are expected races between input and the resolution window, not
// errors. The return value reports whether the reveal was applied.
//
// The two positions of a pair are evaluated as an atomic unit the instant
// the second reveal lands: the buffer reaching size 2 resolves
// synchronously, so no third reveal can interleave.
func (s *Session) Reveal(index int) bool {
	if s.locked || s.victory {
		return false
	}
	if index < 0 || index >= len(s.cards) {
		return false
	}
	if s.matched[index] || s.inFlip(index) {
		return false
	}

	// First valid reveal of a session arms the timer
	if !s.clock.Running() {
		s.clock.Start()
	}

	s.flip = append(s.flip, index)
	s.emit(events.EventCardRevealed, &events.CardPayload{Index: index, Symbol: s.cards[index]})

	if len(s.flip) == 2 {
		s.resolveTurn(s.tp.Now())
	}
	return true
}

// resolveTurn evaluates the buffered pair. Exactly one move is counted per
// evaluated pair regardless of outcome.
func (s *Session) resolveTurn(now time.Time) {
	first, second := s.flip[0], s.flip[1]

	// Defensive: a resolved pair with an undefined symbol aborts the turn
	// without corrupting counters. Deck construction makes this unreachable.
	if s.cards[first] == 0 || s.cards[second] == 0 {
		s.flip = s.flip[:0]
		s.locked = false
		return
	}

	s.moves++

	if s.cards[first] == s.cards[second] {
		s.resolveMatch(now, first, second)
		return
	}

	// Mismatch: lock immediately, schedule feedback and flip-back. The
	// resetAt deadline is the one that unlocks input; feedbackAt only
	// drives the cosmetic marker.
	s.locked = true
	s.pending = &pendingMismatch{
		first:      first,
		second:     second,
		feedbackAt: now.Add(s.cfg.RevealHold),
		resetAt:    now.Add(s.cfg.RevealHold + s.cfg.MismatchReset),
		generation: s.generation,
	}
	s.emit(events.EventMismatch, &events.PairPayload{First: first, Second: second, Symbol: s.cards[first]})
}

func (s *Session) resolveMatch(now time.Time, first, second int) {
	s.matched[first] = true
	s.matched[second] = true
	s.pairs++
	// No lock on a match; the next turn may begin immediately
	s.flip = s.flip[:0]

	s.goodPulse = []int{first, second}
	s.goodPulseUntil = now.Add(s.cfg.FeedbackPulse)

	s.emit(events.EventMatchFound, &events.PairPayload{First: first, Second: second, Symbol: s.cards[first]})

	// Victory can only change on a match, so it is checked only here
	if s.pairs*2 == len(s.cards) {
		s.victory = true
		durationMs := s.clock.Stop()
		s.emit(events.EventVictory, &events.VictoryPayload{DurationMs: durationMs, Moves: s.moves})

		if prev, ok := s.best[s.difficulty.ID]; !ok || durationMs < prev {
			s.best[s.difficulty.ID] = durationMs
			s.emit(events.EventNewBestTime, &events.VictoryPayload{DurationMs: durationMs, Moves: s.moves})
		}
	}
}

// Reset restarts the session at the given difficulty with a freshly
// shuffled deck. Same-difficulty resets reshuffle; Reset is never
// idempotent. Best times are untouched. A pending mismatch resolution is
// invalidated by the generation bump before its deadline can apply.
func (s *Session) Reset(id content.DifficultyID) error {
	difficulty, ok := content.Get(id)
	if !ok {
		return fmt.Errorf("engine: unknown difficulty id %d", id)
	}
	cards, err := deck.Build(difficulty)
	if err != nil {
		return fmt.Errorf("engine: deck build on reset: %w", err)
	}

	s.generation++
	s.pending = nil

	s.difficulty = difficulty
	s.cards = cards
	s.matched = make([]bool, len(cards))
	s.flip = s.flip[:0]
	s.moves = 0
	s.pairs = 0
	s.locked = false
	s.victory = false
	s.goodPulse = nil
	s.goodPulseUntil = time.Time{}

	// Timer is stopped and zeroed; the first reveal of the new session
	// re-arms it
	s.clock.Reset()

	s.emit(events.EventSessionReset, nil)
	return nil
}

// Update advances scheduled work to now: the display clock tick, the
// mismatch feedback pulse, the mismatch flip-back, and good-pulse expiry.
// The host loop calls it periodically; cadence only affects display
// freshness, never protocol correctness.
func (s *Session) Update(now time.Time) {
	s.clock.Tick()

	if s.goodPulse != nil && !now.Before(s.goodPulseUntil) {
		s.goodPulse = nil
	}

	p := s.pending
	if p == nil {
		return
	}

	// A deadline armed under a superseded generation must never touch the
	// current session
	if p.generation != s.generation {
		s.pending = nil
		return
	}

	if !p.feedbackShown && !now.Before(p.feedbackAt) {
		p.feedbackShown = true
	}

	if !now.Before(p.resetAt) {
		s.flip = s.flip[:0]
		s.locked = false
		s.pending = nil
		s.emit(events.EventMismatchReverted, &events.PairPayload{First: p.first, Second: p.second, Symbol: s.cards[p.first]})
	}
}
