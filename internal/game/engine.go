// internal/game/engine.go
//
// Core game engine for a single session.
// Responsibilities:
//   - Hold the secret word and the append-only list of accepted guesses.
//   - Validate guesses (game ongoing, length, alphabetic, in word list, not repeated).
//   - Score guesses through the configured Evaluator.
//   - Track state transitions: ongoing → won/lost.
//
// Notes:
//   - Rejections never mutate state; callers get one of the Err* values below.
//   - The engine performs no I/O.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
)

const (
	// MaxGuesses is the number of attempts per session.
	MaxGuesses = 6
	// WordLength is the number of letters in the secret and in every guess.
	WordLength = 5
)

// Reasons a guess is rejected.
var (
	ErrGameOver       = errors.New("game finished")
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrNotInWordList  = errors.New("not in word list")
	ErrAlreadyGuessed = errors.New("already guessed")
)

// WordList is the membership check used to validate guesses.
type WordList interface {
	Contains(word string) bool
}

// Option configures a Game.
type Option func(*Game)

// WithEvaluator replaces the default membership-test scorer.
func WithEvaluator(e Evaluator) Option {
	return func(g *Game) { g.eval = e }
}

// Game holds the state of a single session.
type Game struct {
	ID      string // random hex string for log correlation
	secret  string
	words   WordList
	eval    Evaluator
	guesses []Guess
	outcome Outcome
}

// New starts a game for secret. secret must be a member of words.
func New(words WordList, secret string, opts ...Option) *Game {
	g := &Game{
		ID:     randomID(),
		secret: strings.ToLower(secret),
		words:  words,
		eval:   Evaluate,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Submit validates and scores word, appending it to the game on success.
// It returns the per-letter accuracy sequence, or one of the Err* reasons
// with the game left untouched.
//
// State transitions:
//   - word equals the secret → Won.
//   - Else if the number of guesses reaches MaxGuesses → Lost.
func (g *Game) Submit(word string) ([]Accuracy, error) {
	if g.outcome.Terminal() || len(g.guesses) >= MaxGuesses {
		return nil, ErrGameOver
	}
	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != WordLength || !isAlpha(word) {
		return nil, ErrInvalidGuess
	}
	if !g.words.Contains(word) {
		return nil, ErrNotInWordList
	}
	if g.guessed(word) {
		return nil, ErrAlreadyGuessed
	}

	marks := g.eval(g.secret, word)
	g.guesses = append(g.guesses, Guess{Word: word, Marks: marks})

	if word == g.secret {
		g.outcome = Won
	} else if len(g.guesses) == MaxGuesses {
		g.outcome = Lost
	}
	return append([]Accuracy(nil), marks...), nil
}

// Outcome reports the current state.
func (g *Game) Outcome() Outcome { return g.outcome }

// Secret returns the word being guessed.
func (g *Game) Secret() string { return g.secret }

// Guesses returns a copy of the accepted guesses in order.
func (g *Game) Guesses() []Guess {
	out := make([]Guess, len(g.guesses))
	for i, gs := range g.guesses {
		out[i] = Guess{Word: gs.Word, Marks: append([]Accuracy(nil), gs.Marks...)}
	}
	return out
}

// Attempts returns the number of accepted guesses.
func (g *Game) Attempts() int { return len(g.guesses) }

func (g *Game) guessed(word string) bool {
	for _, gs := range g.guesses {
		if gs.Word == word {
			return true
		}
	}
	return false
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
