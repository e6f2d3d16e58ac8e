// Package deck builds randomized fully-paired decks for a difficulty
// configuration. Every symbol in a built deck occurs exactly twice; that
// exact-multiplicity-two property is what makes match evaluation by simple
// symbol equality safe for the rest of the engine.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/lixenwraith/flipmatch/content"
)

// Deck is an ordered sequence of card symbols, length 2 x pairs
type Deck []rune

// Shuffle returns a uniformly random permutation of src without mutating it.
// Unbiased Fisher-Yates.
func Shuffle[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Build produces a randomized deck for cfg: the symbol pool is shuffled,
// truncated to the pair count, duplicated, and the multiset shuffled again.
// A pool smaller than the pair count is a registry precondition violation
// and fails fast.
func Build(cfg content.Difficulty) (Deck, error) {
	if cfg.Pairs > len(cfg.Pool) {
		return nil, fmt.Errorf("deck: pair count %d exceeds pool size %d for difficulty %q",
			cfg.Pairs, len(cfg.Pool), cfg.ID)
	}

	chosen := Shuffle(cfg.Pool)[:cfg.Pairs]

	cards := make(Deck, 0, cfg.Pairs*2)
	for _, sym := range chosen {
		cards = append(cards, sym, sym)
	}

	return Deck(Shuffle(cards)), nil
}
