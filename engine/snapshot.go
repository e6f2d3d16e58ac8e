package engine

import "github.com/lixenwraith/flipmatch/content"

// Snapshot is the one-directional projection from logical state to the
// display surface. Collaborators render from it; the core never reads
// visual state back to decide logic.
type Snapshot struct {
	Difficulty content.DifficultyID
	Columns    int

	Cards []CardView

	Moves     int
	Matches   int
	Pairs     int
	ElapsedMs int64
	BestMs    int64
	HasBest   bool

	Locked  bool
	Victory bool
}

// Snapshot projects the current session state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Difficulty: s.difficulty.ID,
		Columns:    s.difficulty.Columns,
		Cards:      make([]CardView, len(s.cards)),
		Moves:      s.moves,
		Matches:    s.pairs,
		Pairs:      s.difficulty.Pairs,
		ElapsedMs:  s.clock.ElapsedMs(),
		Locked:     s.locked,
		Victory:    s.victory,
	}

	if best, ok := s.best[s.difficulty.ID]; ok {
		snap.BestMs = best
		snap.HasBest = true
	}

	for i := range s.cards {
		view := CardView{State: CardHidden}
		switch {
		case s.matched[i]:
			view.State = CardMatched
			view.Symbol = s.cards[i]
		case s.inFlip(i):
			view.State = CardRevealed
			view.Symbol = s.cards[i]
		}
		snap.Cards[i] = view
	}

	for _, i := range s.goodPulse {
		snap.Cards[i].Feedback = FeedbackGood
	}
	if p := s.pending; p != nil && p.feedbackShown && p.generation == s.generation {
		snap.Cards[p.first].Feedback = FeedbackBad
		snap.Cards[p.second].Feedback = FeedbackBad
	}

	return snap
}
