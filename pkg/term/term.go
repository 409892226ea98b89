// Package term provides the terminal capability the picker widget runs on:
// raw-mode session management, semantic key input, line-oriented output and
// line erasure. The widget only depends on the Terminal interface, so tests
// and embedders can substitute their own implementation.
package term

// KeyKind identifies a semantic key decoded from the raw input stream.
type KeyKind int

// Key kinds
const (
	KeyUnknown KeyKind = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// Key is one decoded key press. Rune is set only for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Terminal is the capability surface the picker needs from a terminal.
//
// Session acquires exclusive use of the terminal for one interaction: it
// enters raw mode and hides the cursor, and the returned restore function
// undoes both. Callers must invoke restore on every exit path, normal or
// error, typically via defer.
//
// ReadKey blocks until one key is available. WriteLine writes one line of
// (possibly multi-line) text. ClearLastLines erases the last n printed lines
// and leaves the cursor at the top of the erased region. Size reports the
// current terminal dimensions in character cells.
type Terminal interface {
	Session() (restore func(), err error)
	ReadKey() (Key, error)
	WriteLine(s string) error
	ClearLastLines(n int) error
	Flush() error
	Size() (rows, cols int)
}
