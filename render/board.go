// Package render draws the board and HUD from the engine's display
// projection. It consumes snapshots only; nothing here feeds back into
// game logic.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flipmatch/constants"
	"github.com/lixenwraith/flipmatch/engine"
	"github.com/lixenwraith/flipmatch/format"
)

// BoardRenderer draws a session snapshot onto a tcell screen
type BoardRenderer struct {
	screen tcell.Screen
}

// NewBoardRenderer creates a renderer over screen
func NewBoardRenderer(screen tcell.Screen) *BoardRenderer {
	return &BoardRenderer{screen: screen}
}

func cardStyle(view engine.CardView, underCursor bool) tcell.Style {
	style := tcell.StyleDefault

	switch view.State {
	case engine.CardHidden:
		style = style.Foreground(tcell.ColorGray)
	case engine.CardRevealed:
		style = style.Foreground(tcell.ColorWhite).Bold(true)
	case engine.CardMatched:
		style = style.Foreground(tcell.ColorGreen)
	}

	switch view.Feedback {
	case engine.FeedbackGood:
		style = style.Foreground(tcell.ColorLightGreen).Bold(true)
	case engine.FeedbackBad:
		style = style.Foreground(tcell.ColorRed).Bold(true)
	}

	if underCursor {
		style = style.Reverse(true)
	}
	return style
}

func (r *BoardRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawCard draws one card box with its face rune centered
func (r *BoardRenderer) drawCard(x, y int, view engine.CardView, underCursor bool) {
	style := cardStyle(view, underCursor)

	face := constants.HiddenCardRune
	if view.State != engine.CardHidden {
		face = view.Symbol
	}

	w := constants.CardCellWidth - 1
	h := constants.CardCellHeight - 1

	r.screen.SetContent(x, y, '┌', nil, style)
	r.screen.SetContent(x+w-1, y, '┐', nil, style)
	r.screen.SetContent(x, y+h-1, '└', nil, style)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
	for cx := x + 1; cx < x+w-1; cx++ {
		r.screen.SetContent(cx, y, '─', nil, style)
		r.screen.SetContent(cx, y+h-1, '─', nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		r.screen.SetContent(x, cy, '│', nil, style)
		r.screen.SetContent(x+w-1, cy, '│', nil, style)
		for cx := x + 1; cx < x+w-1; cx++ {
			r.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
	r.screen.SetContent(x+w/2, y+h/2, face, nil, style)
}

// Draw renders the full frame: board grid, HUD, key help
func (r *BoardRenderer) Draw(snap engine.Snapshot, cursor int, muted bool) {
	r.screen.Clear()

	width, height := r.screen.Size()
	cols := snap.Columns
	rows := (len(snap.Cards) + cols - 1) / cols

	boardW := cols * constants.CardCellWidth
	boardH := rows * constants.CardCellHeight
	originX := (width - boardW) / 2
	originY := (height - boardH - 2) / 2
	if originX < 0 {
		originX = 0
	}
	if originY < 1 {
		originY = 1
	}

	for i, view := range snap.Cards {
		cx := originX + (i%cols)*constants.CardCellWidth
		cy := originY + (i/cols)*constants.CardCellHeight
		r.drawCard(cx, cy, view, i == cursor && !snap.Victory)
	}

	r.drawHUD(snap, originX, originY-1, originY+boardH, muted)
	r.screen.Show()
}

func (r *BoardRenderer) drawHUD(snap engine.Snapshot, x, topY, bottomY int, muted bool) {
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	best := "--:--"
	if snap.HasBest {
		best = format.ClockString(snap.BestMs)
	}
	top := fmt.Sprintf("[%s]  time %s  best %s  moves %s  pairs %s/%s",
		snap.Difficulty,
		format.ClockString(snap.ElapsedMs),
		best,
		format.OrdinalDigits(snap.Moves, 2),
		format.OrdinalDigits(snap.Matches, 2),
		format.OrdinalDigits(snap.Pairs, 2),
	)
	if muted {
		top += "  [muted]"
	}
	r.drawText(x, topY, top, hudStyle)

	help := "hjkl/arrows move  space reveal  r restart  1/2/3 difficulty  a solve  m mute  q quit"
	if snap.Victory {
		help = "solved! press r to play again, 1/2/3 for a new difficulty, q to quit"
	}
	r.drawText(x, bottomY, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}
