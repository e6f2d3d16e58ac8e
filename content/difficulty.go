package content

import "fmt"

// DifficultyID identifies one entry of the fixed difficulty catalog
type DifficultyID uint8

const (
	DifficultyChill DifficultyID = iota
	DifficultyFocus
	DifficultyIntense

	difficultyCount
)

// String returns the display name of the difficulty
func (d DifficultyID) String() string {
	switch d {
	case DifficultyChill:
		return "chill"
	case DifficultyFocus:
		return "focus"
	case DifficultyIntense:
		return "intense"
	default:
		return "unknown"
	}
}

// Difficulty is one immutable catalog entry: how many pairs the board holds,
// the symbol superset pairs are drawn from, and the layout column count
type Difficulty struct {
	ID      DifficultyID
	Pairs   int
	Columns int
	Pool    []rune
}

// CardCount returns the deck length for this difficulty
func (d Difficulty) CardCount() int {
	return d.Pairs * 2
}

// Rows returns the number of layout rows for this difficulty
func (d Difficulty) Rows() int {
	rows := d.CardCount() / d.Columns
	if d.CardCount()%d.Columns != 0 {
		rows++
	}
	return rows
}

// basePool is the shared symbol superset; each difficulty truncates or
// extends its own slice of it at registration
var basePool = []rune{
	'★', '☀', '☂', '♣', '♠', '♥',
	'♦', '☾', '♪', '✿', '❄', '⚡',
	'☕', '⚓', '✈', '⚙',
}

var catalog = [difficultyCount]Difficulty{
	DifficultyChill:   {ID: DifficultyChill, Pairs: 6, Columns: 4, Pool: basePool[:10]},
	DifficultyFocus:   {ID: DifficultyFocus, Pairs: 8, Columns: 4, Pool: basePool[:12]},
	DifficultyIntense: {ID: DifficultyIntense, Pairs: 10, Columns: 5, Pool: basePool},
}

// Get returns the catalog entry for id
func Get(id DifficultyID) (Difficulty, bool) {
	if id >= difficultyCount {
		return Difficulty{}, false
	}
	return catalog[id], true
}

// MustGet returns the catalog entry for id, panicking on an unknown id.
// Callers pass compile-time constants; an unknown id is a programming error.
func MustGet(id DifficultyID) Difficulty {
	d, ok := Get(id)
	if !ok {
		panic(fmt.Sprintf("content: unknown difficulty id %d", id))
	}
	return d
}

// All returns every catalog entry in id order
func All() []Difficulty {
	return catalog[:]
}

// Validate checks catalog preconditions once at startup. A pool smaller than
// its pair count can never build a fully-paired deck, so this is a fatal
// configuration error, not a runtime state.
func Validate() error {
	for _, d := range catalog {
		if d.Pairs <= 0 {
			return fmt.Errorf("content: difficulty %q has non-positive pair count %d", d.ID, d.Pairs)
		}
		if d.Columns <= 0 {
			return fmt.Errorf("content: difficulty %q has non-positive column count %d", d.ID, d.Columns)
		}
		if len(d.Pool) < d.Pairs {
			return fmt.Errorf("content: difficulty %q pool size %d below pair count %d", d.ID, len(d.Pool), d.Pairs)
		}
		seen := make(map[rune]bool, len(d.Pool))
		for _, sym := range d.Pool {
			if seen[sym] {
				return fmt.Errorf("content: difficulty %q pool contains duplicate symbol %q", d.ID, sym)
			}
			seen[sym] = true
		}
	}
	return nil
}
