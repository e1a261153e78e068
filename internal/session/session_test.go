package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// recorder is a Board that logs every call. When m is set it also records
// the machine's cursor at the time of each legend recolor.
type recorder struct {
	calls     []string
	m         *Machine
	legendAt  [][2]int
	announced []game.Outcome
}

func (r *recorder) DrawLetter(row, col int, ch rune) {
	r.calls = append(r.calls, fmt.Sprintf("draw %d,%d %c", row, col, ch))
}

func (r *recorder) ClearCell(row, col int) {
	r.calls = append(r.calls, fmt.Sprintf("clear %d,%d", row, col))
}

func (r *recorder) RecolorGuessCell(row, col int, a game.Accuracy) {
	r.calls = append(r.calls, fmt.Sprintf("cell %d,%d %s", row, col, a))
}

func (r *recorder) RecolorLegendKey(letter rune, a game.Accuracy) {
	r.calls = append(r.calls, fmt.Sprintf("key %c %s", letter, a))
	if r.m != nil {
		row, col := r.m.Cursor()
		r.legendAt = append(r.legendAt, [2]int{row, col})
	}
}

func (r *recorder) AnnounceGameOver(outcome game.Outcome, secret string, attempts int) {
	r.announced = append(r.announced, outcome)
	r.calls = append(r.calls, fmt.Sprintf("over %s %s %d", outcome, secret, attempts))
}

var vocabWords = []string{
	"apple", "grape", "mango", "peach", "zebra",
	"crane", "lemon", "ocean", "tiger", "robot", "ppale",
}

func newMachine(t *testing.T, secret string) (*Machine, *recorder) {
	t.Helper()
	v, err := words.New("test", vocabWords)
	require.NoError(t, err)
	rec := &recorder{}
	m := New(game.New(v, secret), rec)
	rec.m = m
	return m, rec
}

func typeWord(m *Machine, w string) {
	for _, r := range w {
		m.Handle(Letter(r))
	}
}

func enter(m *Machine, w string) {
	typeWord(m, w)
	m.Handle(KeyEvent{Kind: KeySubmit})
}

func TestTypingDrawsAndAdvances(t *testing.T) {
	m, rec := newMachine(t, "apple")
	typeWord(m, "gr")

	row, col := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, "GR", m.Input())
	assert.Equal(t, []string{"draw 0,0 G", "draw 0,1 R"}, rec.calls)
}

func TestSixthLetterIgnored(t *testing.T) {
	m, rec := newMachine(t, "apple")
	typeWord(m, "grape")
	rec.calls = nil

	m.Handle(Letter('x'))
	_, col := m.Cursor()
	assert.Equal(t, 5, col)
	assert.Equal(t, "GRAPE", m.Input())
	assert.Empty(t, rec.calls)
}

func TestNonLayoutKeysIgnored(t *testing.T) {
	m, rec := newMachine(t, "apple")
	for _, r := range "1 é-" {
		m.Handle(Letter(r))
	}
	assert.Empty(t, m.Input())
	assert.Empty(t, rec.calls)
}

func TestBackspace(t *testing.T) {
	m, rec := newMachine(t, "apple")
	m.Handle(KeyEvent{Kind: KeyBackspace})
	assert.Empty(t, rec.calls, "backspace at column 0 is a no-op")

	typeWord(m, "gra")
	rec.calls = nil
	m.Handle(KeyEvent{Kind: KeyBackspace})

	_, col := m.Cursor()
	assert.Equal(t, 2, col)
	assert.Equal(t, "GR", m.Input())
	assert.Equal(t, []string{"clear 0,2"}, rec.calls)
}

func TestRejectedSubmitIsSilent(t *testing.T) {
	m, rec := newMachine(t, "apple")
	for _, w := range []string{"gra", "abcde"} {
		m2, rec2 := newMachine(t, "apple")
		enter(m2, w)
		row, col := m2.Cursor()
		assert.Equal(t, 0, row, w)
		assert.Equal(t, len(w), col, w)
		assert.Len(t, rec2.calls, len(w), "only the draws for %q", w)
	}

	enter(m, "grape")
	rec.calls = nil
	enter(m, "grape")
	assert.Equal(t, "GRAPE", m.Input())
	row, col := m.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 5, col)
	for _, c := range rec.calls {
		assert.Contains(t, c, "draw")
	}
}

func TestAcceptedSubmitRecolorsBeforeAdvancing(t *testing.T) {
	m, rec := newMachine(t, "apple")
	typeWord(m, "zebra")
	rec.calls = nil
	m.Handle(KeyEvent{Kind: KeySubmit})

	assert.Equal(t, []string{
		"cell 0,0 absent", "key Z absent",
		"cell 0,1 exists", "key E exists",
		"cell 0,2 absent", "key B absent",
		"cell 0,3 absent", "key R absent",
		"cell 0,4 exists", "key A exists",
	}, rec.calls)
	for _, at := range rec.legendAt {
		assert.Equal(t, [2]int{0, 5}, at, "legend must be recolored before the cursor moves")
	}

	row, col := m.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
	assert.Empty(t, m.Input())
	assert.True(t, m.Accepting())
}

func TestLegendNeverDowngrades(t *testing.T) {
	m, rec := newMachine(t, "apple")
	enter(m, "ppale") // P at 1 correct
	assert.Equal(t, game.Correct, m.Legend()['P'])

	rec.calls = nil
	enter(m, "grape") // P at 3 is only exists
	assert.Equal(t, game.Correct, m.Legend()['P'])
	assert.Contains(t, rec.calls, "cell 1,3 exists")
	assert.Contains(t, rec.calls, "key P correct")
}

func TestWinDisablesInput(t *testing.T) {
	m, rec := newMachine(t, "apple")
	enter(m, "zebra")
	enter(m, "apple")

	assert.False(t, m.Accepting())
	assert.Equal(t, []game.Outcome{game.Won}, rec.announced)
	assert.Contains(t, rec.calls, "over won apple 2")

	rec.calls = nil
	typeWord(m, "mango")
	m.Handle(KeyEvent{Kind: KeyBackspace})
	m.Handle(KeyEvent{Kind: KeySubmit})
	assert.Empty(t, rec.calls)
}

func TestLastRowRecoloredInPlace(t *testing.T) {
	m, rec := newMachine(t, "apple")
	for _, w := range []string{"grape", "mango", "peach", "zebra", "crane"} {
		enter(m, w)
	}
	row, _ := m.Cursor()
	require.Equal(t, 5, row)

	rec.calls = nil
	enter(m, "lemon")

	assert.Contains(t, rec.calls, "cell 5,0 exists")
	assert.Contains(t, rec.calls, "over lost apple 6")
	row, col := m.Cursor()
	assert.Equal(t, 5, row)
	assert.Equal(t, 5, col)
	assert.False(t, m.Accepting())
}

func TestEscapeEndsSession(t *testing.T) {
	m, _ := newMachine(t, "apple")
	assert.False(t, m.Handle(Letter('a')))
	assert.True(t, m.Handle(KeyEvent{Kind: KeyEscape}))
}

func TestLegendProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9001)
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	properties.Property("legend entries never decrease", prop.ForAll(
		func(secret int, picks []int) bool {
			v, _ := words.New("test", vocabWords)
			m := New(game.New(v, vocabWords[secret]), &recorder{})
			prev := m.Legend()
			for _, p := range picks {
				enter(m, vocabWords[p])
				cur := m.Legend()
				for k, a := range prev {
					if cur[k] < a {
						return false
					}
				}
				prev = cur
			}
			return true
		},
		gen.IntRange(0, len(vocabWords)-1),
		gen.SliceOf(gen.IntRange(0, len(vocabWords)-1)),
	))

	properties.TestingRun(t)
}

func TestMergePrecedence(t *testing.T) {
	l := NewLegend()
	assert.Equal(t, game.Absent, l.Merge('a', game.Absent))
	assert.Equal(t, game.Exists, l.Merge('A', game.Exists))
	assert.Equal(t, game.Correct, l.Merge('a', game.Correct))
	assert.Equal(t, game.Correct, l.Merge('a', game.Absent))
	assert.Equal(t, game.Correct, l.Merge('a', game.Exists))

	a, ok := l.Get('A')
	assert.True(t, ok)
	assert.Equal(t, game.Correct, a)
	_, ok = l.Get('q')
	assert.False(t, ok)
}

// fakeTerminal replays a fixed list of keys.
type fakeTerminal struct {
	recorder
	keys     []KeyEvent
	err      error
	shutdown int
}

func (f *fakeTerminal) ReadKey() (KeyEvent, error) {
	if len(f.keys) == 0 {
		return KeyEvent{}, f.err
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeTerminal) Shutdown() { f.shutdown++ }

func TestRunShutsDownOnEscape(t *testing.T) {
	v, err := words.New("test", vocabWords)
	require.NoError(t, err)
	ft := &fakeTerminal{keys: []KeyEvent{
		Letter('a'), Letter('p'), Letter('p'), Letter('l'), Letter('e'),
		{Kind: KeySubmit},
		{Kind: KeyEscape},
		Letter('x'),
	}}
	m := New(game.New(v, "apple"), ft)

	require.NoError(t, Run(ft, m))
	assert.Equal(t, 1, ft.shutdown)
	assert.Equal(t, []game.Outcome{game.Won}, ft.announced)
	assert.Len(t, ft.keys, 1, "keys after escape are not read")
}

func TestRunShutsDownOnReadError(t *testing.T) {
	v, err := words.New("test", vocabWords)
	require.NoError(t, err)
	boom := errors.New("tty gone")
	ft := &fakeTerminal{err: boom}

	err = Run(ft, New(game.New(v, "apple"), ft))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, ft.shutdown)
}
