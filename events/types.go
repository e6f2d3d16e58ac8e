package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventCardRevealed signals a card turning face-up
	// Trigger: Controller.Reveal accepts an index
	// Consumer: AudioHandler (flip tick) | Payload: *CardPayload
	EventCardRevealed EventType = iota

	// EventMatchFound signals a resolved pair entering the matched set
	// Trigger: second reveal of a turn with equal symbols
	// Consumer: AudioHandler, celebration effects | Payload: *PairPayload
	EventMatchFound

	// EventMismatch signals a failed turn; input is locked until the reset
	// window elapses
	// Trigger: second reveal of a turn with unequal symbols
	// Consumer: AudioHandler | Payload: *PairPayload
	EventMismatch

	// EventMismatchReverted signals a mismatched pair flipping back to hidden
	// and input unlocking
	// Trigger: mismatch reset deadline reached in Controller.Update
	// Consumer: render effects | Payload: *PairPayload
	EventMismatchReverted

	// EventVictory signals all pairs matched; the session clock has stopped
	// Trigger: victory check after a match
	// Consumer: AudioHandler, celebration effects | Payload: *VictoryPayload
	EventVictory

	// EventNewBestTime signals the completion time improved (or set) the
	// stored best for the current difficulty
	// Trigger: victory with duration below stored best
	// Consumer: HUD flourish | Payload: *VictoryPayload
	EventNewBestTime

	// EventSessionReset signals a full session restart, possibly at a new
	// difficulty
	// Trigger: Controller.Reset | Payload: nil
	EventSessionReset
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// CardPayload carries a single deck position
type CardPayload struct {
	Index  int
	Symbol rune
}

// PairPayload carries the two positions of an evaluated turn in call order
type PairPayload struct {
	First  int
	Second int
	Symbol rune // symbol at First; equal to Second's on a match
}

// VictoryPayload carries the completed session summary
type VictoryPayload struct {
	DurationMs int64
	Moves      int
}
