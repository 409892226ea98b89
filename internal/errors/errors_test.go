package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryErrorReportsPathAndKind(t *testing.T) {
	err := NewDirectoryError("cannot read directory", "/tmp/x", fs.ErrPermission)

	assert.True(t, IsDirectoryUnreadable(err))
	assert.False(t, IsTerminalIO(err))
	assert.Equal(t, "/tmp/x", err.Path())
	assert.Contains(t, err.Error(), "/tmp/x")
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestTerminalErrorReportsOperation(t *testing.T) {
	err := NewTerminalError("read key", fs.ErrClosed)

	assert.True(t, IsTerminalIO(err))
	assert.Equal(t, "read key", err.Op())
	assert.Contains(t, err.Error(), "read key")
	assert.ErrorIs(t, err, fs.ErrClosed)
}

func TestCancelNotAllowedGuard(t *testing.T) {
	assert.True(t, IsCancelNotAllowed(ErrCancelNotAllowed))
	assert.False(t, IsCancelNotAllowed(New("unrelated")))
}

func TestWrapPreservesNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))
}

func TestWrapAddsContext(t *testing.T) {
	err := Wrap(fs.ErrNotExist, "loading")

	assert.Contains(t, err.Error(), "loading")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, fs.ErrNotExist, Unwrap(err))
}
