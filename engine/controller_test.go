package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/flipmatch/content"
	"github.com/lixenwraith/flipmatch/deck"
	"github.com/lixenwraith/flipmatch/events"
)

func newTestSession(t *testing.T, id content.DifficultyID) (*Session, *MockTimeProvider, *events.EventQueue) {
	t.Helper()
	tp := NewMockTimeProvider(time.Unix(5000, 0))
	queue := events.NewEventQueue()
	s, err := NewSession(id, tp, queue, DefaultConfig())
	if err != nil {
		t.Fatalf("session creation failed: %v", err)
	}
	return s, tp, queue
}

// findMatchingPair returns two positions holding the same symbol
func findMatchingPair(d deck.Deck) (int, int) {
	for i := 0; i < len(d); i++ {
		for j := i + 1; j < len(d); j++ {
			if d[i] == d[j] {
				return i, j
			}
		}
	}
	return -1, -1
}

// findMismatchedPair returns two positions holding different symbols
func findMismatchedPair(d deck.Deck) (int, int) {
	for j := 1; j < len(d); j++ {
		if d[j] != d[0] {
			return 0, j
		}
	}
	return -1, -1
}

// totalMismatchWindow is the full mismatch-to-reset span under defaults
func totalMismatchWindow() time.Duration {
	cfg := DefaultConfig()
	return cfg.RevealHold + cfg.MismatchReset
}

func TestMatchResolvesImmediately(t *testing.T) {
	s, _, _ := newTestSession(t, content.DifficultyChill)
	first, second := findMatchingPair(s.Deck())

	if !s.Reveal(first) {
		t.Fatal("first reveal rejected")
	}
	if !s.Reveal(second) {
		t.Fatal("second reveal rejected")
	}

	if s.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", s.Moves())
	}
	if s.Matches() != 1 {
		t.Errorf("expected 1 matched pair, got %d", s.Matches())
	}
	if !s.IsMatched(first) || !s.IsMatched(second) {
		t.Error("both positions should be in the matched set")
	}
	if s.Locked() {
		t.Error("no lock may engage on a match")
	}

	snap := s.Snapshot()
	if snap.Cards[first].State != CardMatched || snap.Cards[second].State != CardMatched {
		t.Error("matched cards should project as matched")
	}
	if snap.Cards[first].Feedback != FeedbackGood {
		t.Error("matched cards should carry the good pulse")
	}

	// A new pair may begin immediately
	d := s.Deck()
	for i := range d {
		if !s.IsMatched(i) {
			if !s.Reveal(i) {
				t.Errorf("reveal of %d rejected right after a match", i)
			}
			break
		}
	}
}

func TestMismatchLocksUntilResetWindow(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)
	first, second := findMismatchedPair(s.Deck())

	s.Reveal(first)
	s.Reveal(second)

	if s.Moves() != 1 {
		t.Errorf("expected 1 move, got %d", s.Moves())
	}
	if !s.Locked() {
		t.Fatal("mismatch must lock immediately")
	}
	if s.Matches() != 0 {
		t.Errorf("matched set must be unchanged, got %d pairs", s.Matches())
	}

	// Any reveal during the window is a silent no-op
	for i := 0; i < len(s.Deck()); i++ {
		if s.Reveal(i) {
			t.Fatalf("reveal of %d accepted while locked", i)
		}
	}

	// Just before the reset deadline: still locked
	tp.Advance(totalMismatchWindow() - time.Millisecond)
	s.Update(tp.Now())
	if !s.Locked() {
		t.Fatal("lock released before the reset window elapsed")
	}

	// Past the deadline: both positions hidden, lock cleared
	tp.Advance(2 * time.Millisecond)
	s.Update(tp.Now())
	if s.Locked() {
		t.Fatal("lock must clear once the reset window elapses")
	}

	snap := s.Snapshot()
	if snap.Cards[first].State != CardHidden || snap.Cards[second].State != CardHidden {
		t.Error("mismatched cards must return to hidden")
	}

	// Both are independently revealable again
	if !s.Reveal(first) {
		t.Error("first position not revealable after reset window")
	}
	if !s.Reveal(second) {
		t.Error("second position not revealable after reset window")
	}
	if s.Moves() != 2 {
		t.Errorf("expected 2 moves after second turn, got %d", s.Moves())
	}
}

func TestMismatchFeedbackPrecedesUnlock(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)
	cfg := DefaultConfig()
	first, second := findMismatchedPair(s.Deck())

	s.Reveal(first)
	s.Reveal(second)

	// Before the reveal-hold elapses: face-up, no bad marker yet
	tp.Advance(cfg.RevealHold - time.Millisecond)
	s.Update(tp.Now())
	snap := s.Snapshot()
	if snap.Cards[first].Feedback != FeedbackNone {
		t.Error("bad pulse must not start before the reveal hold elapses")
	}
	if snap.Cards[first].State != CardRevealed {
		t.Error("mismatched card must stay face-up during the hold")
	}

	// After the hold: bad marker shown, input still locked. The shorter
	// timer must not unlock early.
	tp.Advance(2 * time.Millisecond)
	s.Update(tp.Now())
	snap = s.Snapshot()
	if snap.Cards[first].Feedback != FeedbackBad || snap.Cards[second].Feedback != FeedbackBad {
		t.Error("bad pulse expected after the reveal hold")
	}
	if !s.Locked() {
		t.Fatal("feedback timer unlocked input early")
	}

	tp.Advance(cfg.MismatchReset)
	s.Update(tp.Now())
	if s.Locked() {
		t.Error("reset timer failed to unlock input")
	}
}

func TestSingleRevealDoesNotCountMove(t *testing.T) {
	s, _, _ := newTestSession(t, content.DifficultyChill)

	s.Reveal(0)
	if s.Moves() != 0 {
		t.Errorf("single reveal must not count a move, got %d", s.Moves())
	}

	// Rejected reveals never count either
	s.Reveal(0)  // already in flip buffer
	s.Reveal(-1) // out of range
	s.Reveal(len(s.Deck()))
	if s.Moves() != 0 {
		t.Errorf("rejected reveals must not count moves, got %d", s.Moves())
	}
}

func TestRevealRejectionRules(t *testing.T) {
	s, _, _ := newTestSession(t, content.DifficultyChill)
	first, second := findMatchingPair(s.Deck())

	if s.Reveal(first) && s.Reveal(first) {
		t.Error("re-reveal of a buffered index must be rejected")
	}
	s.Reveal(second)

	if s.Reveal(first) || s.Reveal(second) {
		t.Error("reveal of a matched index must be rejected")
	}
}

func TestFirstRevealStartsTimer(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)

	tp.Advance(time.Minute) // idle time before play never counts
	if s.ElapsedMs() != 0 {
		t.Errorf("timer must not run before the first reveal, got %d", s.ElapsedMs())
	}

	s.Reveal(0)
	tp.Advance(700 * time.Millisecond)
	s.Update(tp.Now())
	if s.ElapsedMs() != 700 {
		t.Errorf("expected 700ms elapsed after first reveal, got %d", s.ElapsedMs())
	}
}

// playToVictory matches every remaining pair through the public surface
func playToVictory(t *testing.T, s *Session, tp *MockTimeProvider) {
	t.Helper()
	for turns := 0; !s.Victory(); turns++ {
		if turns > len(s.Deck()) {
			t.Fatal("victory unreachable")
		}
		d := s.Deck()
		first := -1
		for i := range d {
			if !s.IsMatched(i) {
				first = i
				break
			}
		}
		second := -1
		for j := first + 1; j < len(d); j++ {
			if !s.IsMatched(j) && d[j] == d[first] {
				second = j
				break
			}
		}
		if !s.Reveal(first) || !s.Reveal(second) {
			t.Fatalf("pair reveal (%d, %d) rejected", first, second)
		}
		tp.Advance(time.Second)
	}
}

func TestVictoryStopsClockAndRecordsBest(t *testing.T) {
	s, tp, queue := newTestSession(t, content.DifficultyChill)

	playToVictory(t, s, tp)

	if !s.Victory() {
		t.Fatal("expected victory")
	}
	if s.Moves() != 6 {
		t.Errorf("expected exactly 6 moves for 6 true pairs, got %d", s.Moves())
	}

	// One second advanced per turn; the last advance landed after the
	// final match, so 5 full seconds elapsed during play
	best, ok := s.BestFor(content.DifficultyChill)
	if !ok {
		t.Fatal("best time not recorded on first win")
	}
	if best != 5000 {
		t.Errorf("expected best 5000ms, got %d", best)
	}

	// Elapsed is frozen at the victory moment
	tp.Advance(time.Minute)
	s.Update(tp.Now())
	if s.ElapsedMs() != 5000 {
		t.Errorf("clock must freeze on victory, got %d", s.ElapsedMs())
	}

	var sawVictory, sawBest bool
	for _, ev := range queue.Consume() {
		switch ev.Type {
		case events.EventVictory:
			sawVictory = true
		case events.EventNewBestTime:
			sawBest = true
		}
	}
	if !sawVictory || !sawBest {
		t.Errorf("expected victory and new-best events, got victory=%v best=%v", sawVictory, sawBest)
	}
}

func TestBestTimeOnlyImproves(t *testing.T) {
	s, tp, queue := newTestSession(t, content.DifficultyChill)

	playToVictory(t, s, tp)
	firstBest, _ := s.BestFor(content.DifficultyChill)

	// Slower run: open with a mismatch, then idle a minute inside the
	// running clock; best must be unchanged
	if err := s.Reset(content.DifficultyChill); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	mf, ms := findMismatchedPair(s.Deck())
	s.Reveal(mf)
	s.Reveal(ms)
	tp.Advance(time.Minute)
	s.Update(tp.Now())
	queue.Consume()
	playToVictory(t, s, tp)
	if best, _ := s.BestFor(content.DifficultyChill); best != firstBest {
		t.Errorf("slower win changed best from %d to %d", firstBest, best)
	}
	for _, ev := range queue.Consume() {
		if ev.Type == events.EventNewBestTime {
			t.Error("slower win must not emit a new-best event")
		}
	}
}

func TestResetClearsSessionKeepsBest(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)

	playToVictory(t, s, tp)
	chillBest, ok := s.BestFor(content.DifficultyChill)
	if !ok {
		t.Fatal("expected chill best after win")
	}

	if err := s.Reset(content.DifficultyFocus); err != nil {
		t.Fatalf("reset to focus failed: %v", err)
	}

	if s.Moves() != 0 || s.Matches() != 0 || s.Locked() || s.Victory() {
		t.Error("per-session fields must clear on reset")
	}
	if s.ElapsedMs() != 0 {
		t.Errorf("elapsed must zero on reset, got %d", s.ElapsedMs())
	}
	if got := len(s.Deck()); got != 16 {
		t.Errorf("expected 16 cards for focus, got %d", got)
	}
	if best, ok := s.BestFor(content.DifficultyChill); !ok || best != chillBest {
		t.Error("best time for the previous difficulty must survive reset")
	}
	if _, ok := s.BestFor(content.DifficultyFocus); ok {
		t.Error("no focus best should exist yet")
	}
}

func TestResetReshufflesSameDifficulty(t *testing.T) {
	s, _, _ := newTestSession(t, content.DifficultyChill)
	before := s.Deck()

	same := true
	for i := 0; i < 20 && same; i++ {
		if err := s.Reset(content.DifficultyChill); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		after := s.Deck()
		for j := range after {
			if after[j] != before[j] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("20 same-difficulty resets produced identical decks")
	}
}

func TestResetInvalidatesPendingMismatch(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)
	first, second := findMismatchedPair(s.Deck())

	s.Reveal(first)
	s.Reveal(second)
	if !s.Locked() {
		t.Fatal("expected lock after mismatch")
	}
	staleGen := s.Generation()

	// Reset mid-resolution, then start a new turn
	tp.Advance(100 * time.Millisecond)
	if err := s.Reset(content.DifficultyChill); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if s.Generation() == staleGen {
		t.Fatal("reset must bump the session generation")
	}
	if !s.Reveal(0) {
		t.Fatal("new session must accept reveals immediately after reset")
	}

	// Let the stale deadline pass well behind us: it must not hide the
	// new session's revealed card nor touch the lock
	tp.Advance(totalMismatchWindow() * 2)
	s.Update(tp.Now())

	snap := s.Snapshot()
	if snap.Cards[0].State != CardRevealed {
		t.Error("stale mismatch deadline reverted a card of the new session")
	}
	if s.Locked() {
		t.Error("stale mismatch deadline locked the new session")
	}
}

func TestMatchedParityAndVictoryTracking(t *testing.T) {
	s, tp, _ := newTestSession(t, content.DifficultyChill)

	check := func() {
		matched := 0
		for i := range s.Deck() {
			if s.IsMatched(i) {
				matched++
			}
		}
		if matched%2 != 0 {
			t.Fatalf("matched count %d is odd", matched)
		}
		if s.Victory() != (matched == len(s.Deck())) {
			t.Fatalf("victory=%v does not track matched=%d/%d", s.Victory(), matched, len(s.Deck()))
		}
	}

	check()
	d := s.Deck()
	first, second := findMatchingPair(d)
	s.Reveal(first)
	check()
	s.Reveal(second)
	check()

	mf, ms := findMismatchedPairUnmatched(s)
	s.Reveal(mf)
	s.Reveal(ms)
	check()
	tp.Advance(totalMismatchWindow())
	s.Update(tp.Now())
	check()

	playToVictory(t, s, tp)
	check()
}

// findMismatchedPairUnmatched picks two unmatched positions with different
// symbols
func findMismatchedPairUnmatched(s *Session) (int, int) {
	d := s.Deck()
	for i := 0; i < len(d); i++ {
		if s.IsMatched(i) {
			continue
		}
		for j := i + 1; j < len(d); j++ {
			if !s.IsMatched(j) && d[j] != d[i] {
				return i, j
			}
		}
	}
	return -1, -1
}

func TestSnapshotHidesFaceDownSymbols(t *testing.T) {
	s, _, _ := newTestSession(t, content.DifficultyChill)

	snap := s.Snapshot()
	for i, c := range snap.Cards {
		if c.State != CardHidden {
			t.Errorf("card %d should start hidden", i)
		}
		if c.Symbol != 0 {
			t.Errorf("hidden card %d leaks its symbol", i)
		}
	}

	s.Reveal(3)
	snap = s.Snapshot()
	if snap.Cards[3].State != CardRevealed || snap.Cards[3].Symbol == 0 {
		t.Error("revealed card must expose state and symbol")
	}
}

func TestIndependentSessions(t *testing.T) {
	a, tpA, _ := newTestSession(t, content.DifficultyChill)
	b, _, _ := newTestSession(t, content.DifficultyChill)

	playToVictory(t, a, tpA)

	if b.Victory() || b.Moves() != 0 {
		t.Error("sessions must not share mutable state")
	}
	if _, ok := b.BestFor(content.DifficultyChill); ok {
		t.Error("best times must not leak across sessions")
	}
}
