package audio

import (
	"github.com/lixenwraith/flipmatch/engine"
	"github.com/lixenwraith/flipmatch/events"
)

// Handler bridges routed game events to the sound manager. The core never
// calls audio directly; sounds are a side effect of the event stream.
type Handler struct {
	sm *SoundManager
}

// NewHandler creates an event handler over sm
func NewHandler(sm *SoundManager) *Handler {
	return &Handler{sm: sm}
}

// EventTypes implements events.Handler
func (h *Handler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventCardRevealed,
		events.EventMatchFound,
		events.EventMismatch,
		events.EventVictory,
	}
}

// HandleEvent implements events.Handler
func (h *Handler) HandleEvent(_ *engine.Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventCardRevealed:
		h.sm.PlayReveal()
	case events.EventMatchFound:
		h.sm.PlayMatch()
	case events.EventMismatch:
		h.sm.PlayMismatch()
	case events.EventVictory:
		h.sm.PlayVictory()
	}
}
