package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/flipmatch/content"
	"github.com/lixenwraith/flipmatch/deck"
	"github.com/lixenwraith/flipmatch/events"
)

// Session is one live puzzle instance. Multiple independent sessions may
// coexist; none share mutable state.
//
// All mutation happens on a single logical execution context: the host
// loop calls Reveal/Reset/Update from one goroutine. Mismatch resolution
// is scheduled by deadline, not by goroutine timers, and every pending
// deadline carries the session generation it was armed under so a Reset
// issued mid-resolution makes the stale deadline a no-op.
//
// Invariants held at every observable instant:
//   - len(flip) is 0, 1 or 2
//   - no index is both matched and in flip
//   - matched count is always even
//   - victory exactly tracks matched count == deck length
//   - while locked, flip gains no new index
type Session struct {
	difficulty content.Difficulty
	cards      deck.Deck

	matched []bool
	flip    []int // reveal order preserved
	moves   int
	pairs   int // matched pair count

	locked  bool
	victory bool

	clock *Clock
	tp    TimeProvider
	cfg   Config
	queue *events.EventQueue

	// generation increments on every Reset; pending deadlines armed under
	// an older generation are discarded unapplied
	generation uint64
	pending    *pendingMismatch

	// transient good-pulse bookkeeping
	goodPulse      []int
	goodPulseUntil time.Time

	// best completion time per difficulty; survives Reset, not process exit
	best map[content.DifficultyID]int64
}

// pendingMismatch is a scheduled mismatch resolution: the bad-feedback
// pulse fires at feedbackAt, the flip-back and unlock at resetAt. The
// resetAt deadline is the one that unlocks input.
type pendingMismatch struct {
	first, second int
	feedbackAt    time.Time
	resetAt       time.Time
	feedbackShown bool
	generation    uint64
}

// NewSession creates a session at the given difficulty with a freshly
// shuffled deck. The queue may be nil when no collaborator listens.
func NewSession(id content.DifficultyID, tp TimeProvider, queue *events.EventQueue, cfg Config) (*Session, error) {
	difficulty, ok := content.Get(id)
	if !ok {
		return nil, fmt.Errorf("engine: unknown difficulty id %d", id)
	}

	cards, err := deck.Build(difficulty)
	if err != nil {
		return nil, fmt.Errorf("engine: initial deck build: %w", err)
	}

	s := &Session{
		difficulty: difficulty,
		cards:      cards,
		matched:    make([]bool, len(cards)),
		flip:       make([]int, 0, 2),
		clock:      NewClock(tp),
		tp:         tp,
		cfg:        cfg.Normalize(),
		queue:      queue,
		best:       make(map[content.DifficultyID]int64),
	}
	return s, nil
}

// Difficulty returns the active difficulty configuration
func (s *Session) Difficulty() content.Difficulty {
	return s.difficulty
}

// Deck returns a copy of the active deck. Automated drivers scan it to
// select pairs; the display surface never uses it.
func (s *Session) Deck() deck.Deck {
	out := make(deck.Deck, len(s.cards))
	copy(out, s.cards)
	return out
}

// Moves returns the count of completed two-card turns
func (s *Session) Moves() int {
	return s.moves
}

// Matches returns the count of resolved pairs
func (s *Session) Matches() int {
	return s.pairs
}

// Locked reports whether a mismatch resolution window is open
func (s *Session) Locked() bool {
	return s.locked
}

// Victory reports whether every position is matched
func (s *Session) Victory() bool {
	return s.victory
}

// ElapsedMs returns the display elapsed time
func (s *Session) ElapsedMs() int64 {
	return s.clock.ElapsedMs()
}

// IsMatched reports whether the position is permanently resolved
func (s *Session) IsMatched(index int) bool {
	return index >= 0 && index < len(s.matched) && s.matched[index]
}

// BestFor returns the best recorded completion time for a difficulty.
// Entries are added or improved by wins, never removed, and survive Reset.
func (s *Session) BestFor(id content.DifficultyID) (int64, bool) {
	ms, ok := s.best[id]
	return ms, ok
}

// Generation returns the reset generation counter, incremented on every
// Reset. Deadlines armed under an older generation never apply.
func (s *Session) Generation() uint64 {
	return s.generation
}

func (s *Session) inFlip(index int) bool {
	for _, i := range s.flip {
		if i == index {
			return true
		}
	}
	return false
}

func (s *Session) emit(t events.EventType, payload any) {
	if s.queue == nil {
		return
	}
	s.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: s.tp.Now()})
}
