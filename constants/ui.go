package constants

// Board Layout
const (
	// CardCellWidth is the rendered width of one card including padding
	CardCellWidth = 7

	// CardCellHeight is the rendered height of one card including padding
	CardCellHeight = 4

	// HiddenCardRune is the face shown for an unrevealed card
	HiddenCardRune = '?'
)
