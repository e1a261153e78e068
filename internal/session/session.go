// internal/session/session.go
//
// Interaction state machine for one game session.
// Responsibilities:
//   - Turn key events into buffer edits, cursor moves and engine submissions.
//   - Keep the keyboard legend in step with every accepted guess.
//   - Tell the Board what to draw; the Board never reads session state.
//
// Ordering: for an accepted guess, every grid cell and legend key is
// recolored before the cursor moves to the next row.

package session

import (
	"errors"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Board receives rendering instructions.
type Board interface {
	DrawLetter(row, col int, ch rune)
	ClearCell(row, col int)
	RecolorGuessCell(row, col int, a game.Accuracy)
	RecolorLegendKey(letter rune, a game.Accuracy)
	AnnounceGameOver(outcome game.Outcome, secret string, attempts int)
}

// Terminal is a Board that also supplies key events and must be released.
type Terminal interface {
	Board
	ReadKey() (KeyEvent, error)
	Shutdown()
}

// Machine owns the input buffer, cursor and legend for a game.
type Machine struct {
	game      *game.Game
	board     Board
	legend    *Legend
	row, col  int
	input     []rune
	accepting bool
	log       zerolog.Logger
}

// New binds a game to the board it is drawn on.
func New(g *game.Game, b Board) *Machine {
	return &Machine{
		game:      g,
		board:     b,
		legend:    NewLegend(),
		accepting: true,
		log:       log.With().Str("game", g.ID).Logger(),
	}
}

// Handle processes one event to completion. It returns true when the
// session should end.
func (m *Machine) Handle(ev KeyEvent) bool {
	switch ev.Kind {
	case KeyEscape:
		m.log.Info().Str("outcome", m.game.Outcome().String()).Msg("session ended by player")
		return true
	case KeyBackspace:
		m.backspace()
	case KeySubmit:
		m.submit()
	case KeyLetter:
		m.letter(ev.Letter)
	}
	return false
}

func (m *Machine) letter(r rune) {
	if !m.accepting || !InLayout(r) || m.col > game.WordLength-1 {
		return
	}
	r = unicode.ToUpper(r)
	m.board.DrawLetter(m.row, m.col, r)
	m.input = append(m.input, r)
	m.col++
}

func (m *Machine) backspace() {
	if !m.accepting || m.col < 1 {
		return
	}
	m.col--
	m.input = m.input[:len(m.input)-1]
	m.board.ClearCell(m.row, m.col)
}

func (m *Machine) submit() {
	if !m.accepting {
		return
	}
	word := strings.ToLower(strings.TrimSpace(string(m.input)))
	marks, err := m.game.Submit(word)
	if err != nil {
		ev := m.log.Debug()
		if !isRejection(err) {
			ev = m.log.Warn()
		}
		ev.Err(err).Int("row", m.row).Msg("guess rejected")
		return
	}
	m.log.Debug().Str("guess", word).Int("row", m.row).Msg("guess accepted")

	for i, a := range marks {
		letter := m.input[i]
		m.board.RecolorGuessCell(m.row, i, a)
		m.board.RecolorLegendKey(letter, m.legend.Merge(letter, a))
	}

	// The last row is recolored in place; there is no row to move into.
	if m.row < game.MaxGuesses-1 {
		m.row++
		m.col = 0
		m.input = m.input[:0]
	}

	if out := m.game.Outcome(); out.Terminal() {
		m.accepting = false
		m.log.Info().
			Str("outcome", out.String()).
			Int("attempts", m.game.Attempts()).
			Msg("game over")
		m.board.AnnounceGameOver(out, m.game.Secret(), m.game.Attempts())
	}
}

func isRejection(err error) bool {
	return errors.Is(err, game.ErrGameOver) ||
		errors.Is(err, game.ErrInvalidGuess) ||
		errors.Is(err, game.ErrNotInWordList) ||
		errors.Is(err, game.ErrAlreadyGuessed)
}

// Cursor returns the current row and column.
func (m *Machine) Cursor() (row, col int) { return m.row, m.col }

// Input returns the letters typed on the current row.
func (m *Machine) Input() string { return string(m.input) }

// Accepting reports whether key input is still being taken.
func (m *Machine) Accepting() bool { return m.accepting }

// Legend returns a copy of the keyboard legend.
func (m *Machine) Legend() map[rune]game.Accuracy { return m.legend.Snapshot() }

// Run reads keys from t until the session ends or t fails. t is shut down
// on every return path.
func Run(t Terminal, m *Machine) error {
	defer t.Shutdown()
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Interface("panic", r).Msg("session aborted")
			panic(r)
		}
	}()
	for {
		ev, err := t.ReadKey()
		if err != nil {
			return err
		}
		if m.Handle(ev) {
			return nil
		}
	}
}
