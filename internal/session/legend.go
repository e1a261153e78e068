package session

import (
	"unicode"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

// Legend tracks the best accuracy seen for each letter across all accepted
// guesses. Entries only move up: Absent → Exists → Correct.
type Legend struct {
	best map[rune]game.Accuracy
}

// NewLegend returns an empty legend.
func NewLegend() *Legend {
	return &Legend{best: make(map[rune]game.Accuracy)}
}

// Merge records a for letter and returns the letter's resulting accuracy.
func (l *Legend) Merge(letter rune, a game.Accuracy) game.Accuracy {
	letter = unicode.ToUpper(letter)
	if cur, ok := l.best[letter]; ok && cur >= a {
		return cur
	}
	l.best[letter] = a
	return a
}

// Get returns the accuracy recorded for letter, if any.
func (l *Legend) Get(letter rune) (game.Accuracy, bool) {
	a, ok := l.best[unicode.ToUpper(letter)]
	return a, ok
}

// Snapshot returns a copy of the legend keyed by upper-case letter.
func (l *Legend) Snapshot() map[rune]game.Accuracy {
	out := make(map[rune]game.Accuracy, len(l.best))
	for k, v := range l.best {
		out[k] = v
	}
	return out
}
