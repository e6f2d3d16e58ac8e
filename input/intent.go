package input

import "github.com/lixenwraith/flipmatch/content"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C, ESC
	IntentResize // Terminal resize event

	// Board navigation
	IntentMotion // h,j,k,l, arrows

	// Protocol actions
	IntentReveal     // Enter, Space - reveal the card under the cursor
	IntentReset      // r - restart at the current difficulty
	IntentDifficulty // 1,2,3 - reset at the selected difficulty

	// Collaborator toggles
	IntentToggleMute // m
	IntentAutoSolve  // a - hand the session to the solver
)

// Intent is one parsed semantic action
type Intent struct {
	Type IntentType

	// DX, DY carry cursor motion for IntentMotion
	DX, DY int

	// Difficulty carries the target for IntentDifficulty
	Difficulty content.DifficultyID
}
