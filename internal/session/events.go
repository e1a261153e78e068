package session

import "unicode"

// EventKind is the type of a key event delivered by the terminal.
type EventKind int

const (
	KeyLetter EventKind = iota
	KeyBackspace
	KeySubmit
	KeyEscape
)

// KeyEvent is a single decoded key press. Letter is only set for KeyLetter.
type KeyEvent struct {
	Kind   EventKind
	Letter rune
}

// Letter builds a KeyLetter event.
func Letter(r rune) KeyEvent { return KeyEvent{Kind: KeyLetter, Letter: r} }

// Layout is the on-screen keyboard, one row per slice.
var Layout = [][]rune{
	[]rune("QWERTYUIOP"),
	[]rune("ASDFGHJKL"),
	[]rune("ZXCVBNM"),
}

var layoutKeys = func() map[rune]struct{} {
	m := make(map[rune]struct{}, 26)
	for _, row := range Layout {
		for _, r := range row {
			m[r] = struct{}{}
		}
	}
	return m
}()

// InLayout reports whether r, upper-cased, has a key on the keyboard.
func InLayout(r rune) bool {
	_, ok := layoutKeys[unicode.ToUpper(r)]
	return ok
}
