// internal/words/words.go
//
// Vocabulary loading for the game engine.
//
// Responsibilities:
//   - Read a newline-delimited word source (file, embedded list, any io.Reader).
//   - Keep only eligible guesses: exactly 5 letters, a–z only, no uppercase
//     (proper nouns are dropped, not lowercased).
//   - Expose an immutable, ordered Vocabulary with O(1) membership checks.
//
// Sources:
//   - LoadFile reads a dictionary such as /usr/share/dict/american-english.
//   - LoadEmbedded reads the list compiled into the binary (assets package).
//   - LoadFileOrEmbedded uses the embedded list only when the file does not exist.
//
// Failure to read the source, or a source with zero eligible words, is a
// *LoadError and is fatal at startup.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// WordLength is the number of letters in every eligible word.
const WordLength = 5

// ErrEmpty is wrapped by LoadError when a source yields no eligible words.
var ErrEmpty = errors.New("no eligible words")

// LoadError reports a vocabulary source that could not be used.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Vocabulary is an immutable ordered list of eligible words.
type Vocabulary struct {
	source string
	list   []string
	set    map[string]struct{}
}

// New filters ws and builds a Vocabulary from the eligible entries, keeping
// their order. Duplicates keep their first position only.
func New(source string, ws []string) (*Vocabulary, error) {
	v := &Vocabulary{source: source, set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		w = strings.TrimSpace(w)
		if !Eligible(w) {
			continue
		}
		if _, dup := v.set[w]; dup {
			continue
		}
		v.set[w] = struct{}{}
		v.list = append(v.list, w)
	}
	if len(v.list) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmpty}
	}
	return v, nil
}

// Load reads one word per line from r.
func Load(source string, r io.Reader) (*Vocabulary, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return New(source, lines)
}

// LoadFile reads the word list at path.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(path, f)
}

// LoadEmbedded reads the word list compiled into the binary.
func LoadEmbedded() (*Vocabulary, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, &LoadError{Source: assets.WordsName, Err: err}
	}
	defer f.Close()
	return Load(assets.WordsName, f)
}

// LoadFileOrEmbedded reads path, falling back to the embedded list when path
// does not exist. Any other read error is returned as is.
func LoadFileOrEmbedded(path string) (*Vocabulary, error) {
	v, err := LoadFile(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return LoadEmbedded()
	}
	return v, err
}

// Eligible reports whether w may appear in a Vocabulary.
func Eligible(w string) bool {
	return len(w) == WordLength && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.list) }

// At returns the i-th word in source order.
func (v *Vocabulary) At(i int) string { return v.list[i] }

// Contains reports whether w is an eligible guess. w must already be lowercase.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[w]
	return ok
}

// Source names where the words came from.
func (v *Vocabulary) Source() string { return v.source }

// Words returns a copy of the word list.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.list...)
}
