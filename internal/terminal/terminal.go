// internal/terminal/terminal.go
//
// tcell-backed Render/Input boundary for a session.
// Responsibilities:
//   - Own the terminal for the lifetime of a session (Init … Fini).
//   - Draw the title, the 6x5 guess grid, the keyboard legend and a status line.
//   - Decode raw key events into session.KeyEvent values.
//
// Colors are chosen here (palette.go); the engine and session only speak in
// game.Accuracy values.

package terminal

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/session"
)

var (
	// ErrTooSmall is wrapped when the terminal cannot fit the board.
	ErrTooSmall = errors.New("terminal window is too small")
	// ErrClosed is returned by ReadKey once the screen has been shut down.
	ErrClosed = errors.New("terminal closed")
)

type cell struct {
	ch    rune
	style tcell.Style
}

// Screen draws a session on a tcell.Screen and reads its keys.
type Screen struct {
	s      tcell.Screen
	lay    layout
	cells  [game.MaxGuesses][game.WordLength]cell
	keys   map[rune]tcell.Style
	closed bool
}

var _ session.Terminal = (*Screen)(nil)

// New takes over the controlling terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return Open(s)
}

// Open lays out the board on an initialised screen. If the screen is too
// small it is released and an error wrapping ErrTooSmall is returned.
func Open(s tcell.Screen) (*Screen, error) {
	w, h := s.Size()
	if !fits(w, h) {
		s.Fini()
		return nil, fmt.Errorf("%w (%dx%d), please resize your window to at least %dx%d and try again",
			ErrTooSmall, w, h, MinWidth, MinHeight)
	}
	sc := &Screen{s: s, lay: computeLayout(w, h), keys: make(map[rune]tcell.Style)}
	for r := range sc.cells {
		for c := range sc.cells[r] {
			sc.cells[r][c] = cell{ch: ' ', style: styleBase}
		}
	}
	for _, k := range sc.lay.keyOrder {
		sc.keys[k] = styleBase
	}
	s.HideCursor()
	sc.redraw()
	log.Debug().Int("width", w).Int("height", h).Msg("screen ready")
	return sc, nil
}

// ReadKey blocks until a key the session understands is pressed.
func (sc *Screen) ReadKey() (session.KeyEvent, error) {
	for {
		if sc.closed {
			return session.KeyEvent{}, ErrClosed
		}
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return session.KeyEvent{}, ErrClosed
		case *tcell.EventResize:
			sc.s.Sync()
		case *tcell.EventKey:
			if k, ok := decodeKey(ev); ok {
				return k, nil
			}
		}
	}
}

// decodeKey maps a tcell key to a session event. Terminals disagree on the
// backspace code, so both BS and DEL are accepted.
func decodeKey(ev *tcell.EventKey) (session.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.KeyEvent{Kind: session.KeyEscape}, true
	case tcell.KeyEnter, tcell.KeyLF:
		return session.KeyEvent{Kind: session.KeySubmit}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return session.KeyEvent{Kind: session.KeyBackspace}, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case '\n', '\r':
			return session.KeyEvent{Kind: session.KeySubmit}, true
		case '\b', 0x7f:
			return session.KeyEvent{Kind: session.KeyBackspace}, true
		}
		if unicode.IsLetter(r) {
			return session.Letter(unicode.ToUpper(r)), true
		}
	}
	return session.KeyEvent{}, false
}

// DrawLetter shows ch in a grid cell.
func (sc *Screen) DrawLetter(row, col int, ch rune) {
	sc.cells[row][col].ch = unicode.ToUpper(ch)
	sc.drawCell(row, col)
	sc.s.Show()
}

// ClearCell blanks a grid cell.
func (sc *Screen) ClearCell(row, col int) {
	sc.cells[row][col] = cell{ch: ' ', style: styleBase}
	sc.drawCell(row, col)
	sc.s.Show()
}

// RecolorGuessCell paints a grid cell for a.
func (sc *Screen) RecolorGuessCell(row, col int, a game.Accuracy) {
	sc.cells[row][col].style = StyleFor(a)
	sc.drawCell(row, col)
	sc.s.Show()
}

// RecolorLegendKey paints a keyboard key for a.
func (sc *Screen) RecolorLegendKey(letter rune, a game.Accuracy) {
	letter = unicode.ToUpper(letter)
	if _, ok := sc.keys[letter]; !ok {
		return
	}
	sc.keys[letter] = StyleFor(a)
	sc.drawKey(letter)
	sc.s.Show()
}

// AnnounceGameOver replaces the status line with the result.
func (sc *Screen) AnnounceGameOver(outcome game.Outcome, secret string, attempts int) {
	var msg string
	switch outcome {
	case game.Won:
		msg = fmt.Sprintf("Solved in %d/%d! Press ESC to quit.", attempts, game.MaxGuesses)
	default:
		msg = fmt.Sprintf("The word was %s. Press ESC to quit.", strings.ToUpper(secret))
	}
	sc.drawCentered(statusY, msg, styleStatus)
	sc.s.Show()
}

// Shutdown restores the terminal. It is safe to call more than once.
func (sc *Screen) Shutdown() {
	if sc.closed {
		return
	}
	sc.closed = true
	sc.s.Fini()
}

func (sc *Screen) redraw() {
	sc.s.Clear()
	t := sc.lay.title
	sc.drawBox(t.x, t.y, len([]rune(titleText))+4, 3, styleBorder)
	sc.drawText(t.x+2, t.y+1, titleText, styleTitle)

	for r := range sc.cells {
		for c := range sc.cells[r] {
			sc.drawCell(r, c)
		}
	}
	for _, k := range sc.lay.keyOrder {
		sc.drawKey(k)
	}
	sc.drawCentered(hintY, hintText, styleHint)
	sc.s.Show()
}

func (sc *Screen) drawCell(row, col int) {
	p := sc.lay.cells[row][col]
	c := sc.cells[row][col]
	sc.drawBox(p.x, p.y, cellW, cellH, styleBorder)
	sc.drawText(p.x+1, p.y+1, " "+string(c.ch)+" ", c.style)
}

func (sc *Screen) drawKey(k rune) {
	p := sc.lay.keys[k]
	sc.drawText(p.x, p.y, " "+string(k)+" ", sc.keys[k])
}

func (sc *Screen) drawBox(x, y, w, h int, st tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		sc.s.SetContent(i, y, tcell.RuneHLine, nil, st)
		sc.s.SetContent(i, y+h-1, tcell.RuneHLine, nil, st)
	}
	for j := y + 1; j < y+h-1; j++ {
		sc.s.SetContent(x, j, tcell.RuneVLine, nil, st)
		sc.s.SetContent(x+w-1, j, tcell.RuneVLine, nil, st)
	}
	sc.s.SetContent(x, y, tcell.RuneULCorner, nil, st)
	sc.s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, st)
	sc.s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, st)
	sc.s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, st)
}

func (sc *Screen) drawText(x, y int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		sc.s.SetContent(x+i, y, r, nil, st)
	}
}

// drawCentered clears row y and writes s centred on it.
func (sc *Screen) drawCentered(y int, s string, st tcell.Style) {
	for x := 0; x < sc.lay.width; x++ {
		sc.s.SetContent(x, y, ' ', nil, styleBase)
	}
	n := len([]rune(s))
	x := (sc.lay.width - n) / 2
	if x < 0 {
		x = 0
	}
	sc.drawText(x, y, s, st)
}
