package engine

// CardState represents the visible state of one deck position
type CardState uint8

const (
	CardHidden CardState = iota
	CardRevealed
	CardMatched
)

// String returns the string representation of a CardState
func (cs CardState) String() string {
	switch cs {
	case CardHidden:
		return "hidden"
	case CardRevealed:
		return "revealed"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Feedback is the transient cosmetic marker on a resolved position
type Feedback uint8

const (
	FeedbackNone Feedback = iota
	FeedbackGood
	FeedbackBad
)

// String returns the string representation of a Feedback marker
func (f Feedback) String() string {
	switch f {
	case FeedbackNone:
		return "none"
	case FeedbackGood:
		return "good"
	case FeedbackBad:
		return "bad"
	default:
		return "unknown"
	}
}

// CardView is the per-position projection handed to collaborators.
// Symbol is zero while the card is hidden; the core never exposes
// face-down symbols through the display surface.
type CardView struct {
	Symbol   rune
	State    CardState
	Feedback Feedback
}
