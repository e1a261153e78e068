package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

var (
	styleBase   = tcell.StyleDefault
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleStatus = tcell.StyleDefault.Bold(true)
)

// accuracyStyles maps each accuracy to the style used for grid cells and
// legend keys alike.
var accuracyStyles = map[game.Accuracy]tcell.Style{
	game.Absent:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
	game.Exists:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorYellow).Bold(true),
	game.Correct: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true),
}

// StyleFor returns the style for a, or the base style for unknown values.
func StyleFor(a game.Accuracy) tcell.Style {
	if st, ok := accuracyStyles[a]; ok {
		return st
	}
	return styleBase
}
