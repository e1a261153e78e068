// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Accuracy: per-letter result of a guess (absent/exists/correct).
//   - Outcome: session state (ongoing/won/lost).
//   - Guess: an accepted word with its accuracy sequence.

package game

// Accuracy represents the evaluation result for a single letter in a guess.
// Values are ordered by precedence: Correct > Exists > Absent.
type Accuracy int

const (
	Absent  Accuracy = iota // letter does not occur in the secret
	Exists                  // letter occurs in the secret at another position
	Correct                 // letter is at this position in the secret
)

func (a Accuracy) String() string {
	switch a {
	case Absent:
		return "absent"
	case Exists:
		return "exists"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// Outcome is the state of a game. Won and Lost are terminal.
type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "playing"
}

// Terminal reports whether no further guesses can be accepted.
func (o Outcome) Terminal() bool { return o != Ongoing }

// Guess is an accepted word and its accuracy sequence.
type Guess struct {
	Word  string
	Marks []Accuracy
}
