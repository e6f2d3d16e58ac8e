package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flipmatch/content"
)

// Machine parses tcell events into semantic Intents
type Machine struct{}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events that map to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(e)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return &Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return &Intent{Type: IntentMotion, DY: -1}
	case tcell.KeyDown:
		return &Intent{Type: IntentMotion, DY: 1}
	case tcell.KeyLeft:
		return &Intent{Type: IntentMotion, DX: -1}
	case tcell.KeyRight:
		return &Intent{Type: IntentMotion, DX: 1}
	case tcell.KeyEnter:
		return &Intent{Type: IntentReveal}
	case tcell.KeyRune:
		return m.processRune(ev.Rune())
	}
	return nil
}

func (m *Machine) processRune(r rune) *Intent {
	switch r {
	case 'q':
		return &Intent{Type: IntentQuit}
	case 'h':
		return &Intent{Type: IntentMotion, DX: -1}
	case 'j':
		return &Intent{Type: IntentMotion, DY: 1}
	case 'k':
		return &Intent{Type: IntentMotion, DY: -1}
	case 'l':
		return &Intent{Type: IntentMotion, DX: 1}
	case ' ':
		return &Intent{Type: IntentReveal}
	case 'r':
		return &Intent{Type: IntentReset}
	case 'm':
		return &Intent{Type: IntentToggleMute}
	case 'a':
		return &Intent{Type: IntentAutoSolve}
	case '1':
		return &Intent{Type: IntentDifficulty, Difficulty: content.DifficultyChill}
	case '2':
		return &Intent{Type: IntentDifficulty, Difficulty: content.DifficultyFocus}
	case '3':
		return &Intent{Type: IntentDifficulty, Difficulty: content.DifficultyIntense}
	}
	return nil
}
