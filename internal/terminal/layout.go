package terminal

import (
	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/session"
)

// Grid cells are 3x5 boxes ("┌───┐", "│ X │", "└───┘") placed edge to edge
// vertically with one column between them. Keys are 3 wide with one column
// between them and one blank line between keyboard rows.
const (
	cellW, cellH = 5, 3
	cellGap      = 1
	keyW, keyGap = 3, 1
	keyRows      = 3 // len(session.Layout)

	titleText = "W O R D L E"
	hintText  = "ENTER guess · BACKSPACE erase · ESC quit"

	enterGlyph     = '⏎'
	backspaceGlyph = '⌫'
)

const (
	gridW = game.WordLength*cellW + (game.WordLength-1)*cellGap
	gridH = game.MaxGuesses * cellH

	titleY = 0 // box of height 3
	gridY  = titleY + 3 + 1
	keysY  = gridY + gridH + 1
	keysH  = 2*keyRows - 1

	statusY = keysY + keysH + 1
	hintY   = statusY + 1

	// MinHeight and MinWidth are the smallest terminal that fits the board.
	MinHeight = hintY + 1
	MinWidth  = 10*keyW + 9*keyGap + 2
)

type point struct{ x, y int }

// layout holds screen positions computed once for a terminal size.
type layout struct {
	width, height int
	title         point
	cells         [game.MaxGuesses][game.WordLength]point // top-left of each box
	keys          map[rune]point                          // left of each 3-wide key
	keyOrder      []rune                                  // draw order, including glyph keys
}

func computeLayout(w, h int) layout {
	l := layout{width: w, height: h, keys: make(map[rune]point)}
	l.title = point{x: (w - len([]rune(titleText)) - 4) / 2, y: titleY}

	x0 := (w - gridW) / 2
	for r := 0; r < game.MaxGuesses; r++ {
		for c := 0; c < game.WordLength; c++ {
			l.cells[r][c] = point{x: x0 + c*(cellW+cellGap), y: gridY + r*cellH}
		}
	}

	for i, row := range session.Layout {
		keys := row
		if i == len(session.Layout)-1 {
			keys = append(append([]rune{enterGlyph}, row...), backspaceGlyph)
		}
		n := len(keys)
		rx := (w - (n*keyW + (n-1)*keyGap)) / 2
		for j, k := range keys {
			l.keys[k] = point{x: rx + j*(keyW+keyGap), y: keysY + 2*i}
			l.keyOrder = append(l.keyOrder, k)
		}
	}
	return l
}

func fits(w, h int) bool { return w >= MinWidth && h >= MinHeight }
