// Package assets holds the word list compiled into the binary. It is used
// when no dictionary file is configured and the system dictionary is absent.
package assets

import (
	"embed"
	"io"
)

// WordsName identifies the embedded list in logs and load errors.
const WordsName = "embedded:words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWords opens the embedded newline-delimited word list.
func OpenWords() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}
