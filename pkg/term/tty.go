package term

import (
	"bufio"
	"os"
	"strings"

	"github.com/muesli/termenv"
	xterm "golang.org/x/term"

	"pickd/internal/errors"
)

// TTY is the real Terminal backed by the process's controlling terminal.
// Input is read from stdin; the frame is drawn on stderr so that a selected
// path printed to stdout stays clean for shell composition.
type TTY struct {
	in     *os.File
	reader *bufio.Reader
	buf    *bufio.Writer
	out    *termenv.Output
	outFd  int
}

// Stderr returns a TTY reading keys from stdin and drawing on stderr.
func Stderr() *TTY {
	buf := bufio.NewWriter(os.Stderr)
	return &TTY{
		in:     os.Stdin,
		reader: bufio.NewReader(os.Stdin),
		buf:    buf,
		out:    termenv.NewOutput(buf),
		outFd:  int(os.Stderr.Fd()),
	}
}

// Session puts the terminal into raw mode and hides the cursor. The restore
// function is safe to call exactly once and never fails; restore errors are
// deliberately swallowed because they race with process teardown.
func (t *TTY) Session() (func(), error) {
	fd := int(t.in.Fd())
	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		return nil, errors.NewTerminalError("enter raw mode", err)
	}
	t.out.HideCursor()
	_ = t.buf.Flush()

	return func() {
		t.out.ShowCursor()
		_ = t.buf.Flush()
		_ = xterm.Restore(fd, oldState)
	}, nil
}

// WriteLine writes s followed by a line break. Raw mode disables output
// post-processing, so every line break must be an explicit CR LF.
func (t *TTY) WriteLine(s string) error {
	s = strings.ReplaceAll(s, "\n", "\r\n")
	if _, err := t.buf.WriteString(s + "\r\n"); err != nil {
		return errors.NewTerminalError("write", err)
	}
	return nil
}

// ClearLastLines erases the last n printed lines and parks the cursor at the
// start of the erased region.
func (t *TTY) ClearLastLines(n int) error {
	if n <= 0 {
		return nil
	}
	t.out.ClearLines(n)
	if _, err := t.buf.WriteString("\r"); err != nil {
		return errors.NewTerminalError("clear lines", err)
	}
	return nil
}

// Flush pushes buffered output to the terminal.
func (t *TTY) Flush() error {
	if err := t.buf.Flush(); err != nil {
		return errors.NewTerminalError("flush", err)
	}
	return nil
}

// Size reports the terminal dimensions. On query failure it falls back to
// the traditional 24x80 so paging stays usable.
func (t *TTY) Size() (rows, cols int) {
	cols, rows, err := xterm.GetSize(t.outFd)
	if err != nil || rows <= 0 || cols <= 0 {
		return 24, 80
	}
	return rows, cols
}
