package picker

import (
	"io"

	"pickd/pkg/term"
)

// fakeTerm is a scripted Terminal for tests. It plays back a fixed key
// sequence, records every write and clear, and keeps a model of the visible
// lines so tests can assert what the user would still see.
type fakeTerm struct {
	keys   []term.Key
	keyErr error // returned once the scripted keys run out

	rows int
	cols int

	lines    []string // every line ever written
	visible  []string // lines currently on screen
	cleared  []int    // n of every ClearLastLines call
	flushes  int
	sessions int
	restores int
}

func newFakeTerm(keys ...term.Key) *fakeTerm {
	return &fakeTerm{keys: keys, rows: 10, cols: 80}
}

func (f *fakeTerm) Session() (func(), error) {
	f.sessions++
	return func() { f.restores++ }, nil
}

func (f *fakeTerm) ReadKey() (term.Key, error) {
	if len(f.keys) == 0 {
		if f.keyErr != nil {
			return term.Key{}, f.keyErr
		}
		return term.Key{}, io.EOF
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeTerm) WriteLine(s string) error {
	f.lines = append(f.lines, s)
	f.visible = append(f.visible, s)
	return nil
}

func (f *fakeTerm) ClearLastLines(n int) error {
	f.cleared = append(f.cleared, n)
	if n > len(f.visible) {
		n = len(f.visible)
	}
	f.visible = f.visible[:len(f.visible)-n]
	return nil
}

func (f *fakeTerm) Flush() error {
	f.flushes++
	return nil
}

func (f *fakeTerm) Size() (rows, cols int) {
	return f.rows, f.cols
}

// Key shorthands for scripted sequences.
func kDown() term.Key   { return term.Key{Kind: term.KeyArrowDown} }
func kUp() term.Key     { return term.Key{Kind: term.KeyArrowUp} }
func kLeft() term.Key   { return term.Key{Kind: term.KeyArrowLeft} }
func kRight() term.Key  { return term.Key{Kind: term.KeyArrowRight} }
func kEnter() term.Key  { return term.Key{Kind: term.KeyEnter} }
func kEscape() term.Key { return term.Key{Kind: term.KeyEscape} }
func kSpace() term.Key  { return term.Key{Kind: term.KeyRune, Rune: ' '} }
func kRune(r rune) term.Key {
	return term.Key{Kind: term.KeyRune, Rune: r}
}
