package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// DateKeyLayout is the calendar-date format hashed by WordIndex.
const DateKeyLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD for the calendar date of t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDate parses a YYYY-MM-DD key as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, s, time.Local)
}

// WordIndex returns a deterministic index for a date using blake2b(key=salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	key := blake2b.Sum256([]byte(salt))
	h, _ := blake2b.New256(key[:]) // 32-byte key never exceeds blake2b.Size
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Select returns the secret word for date. vocab must be non-empty.
func Select(vocab *words.Vocabulary, date time.Time, salt string) string {
	return vocab.At(WordIndex(date, salt, vocab.Len()))
}
