// Package errors provides standardized error handling for the pickd
// application. It defines common error types, constants, and helper functions
// for consistent error creation, wrapping, and handling across the
// application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// DirectoryUnreadable means a directory could not be enumerated
	DirectoryUnreadable
	// TerminalIO means a terminal read, write, flush or cursor operation failed
	TerminalIO
	// CancelNotAllowed means the cancellable code path was invoked from an
	// entry point that disallows cancellation. This is a library contract
	// violation, not a user error.
	CancelNotAllowed
)

// ErrCancelNotAllowed is returned when a cancel result reaches an entry point
// that never permits cancellation.
var ErrCancelNotAllowed = &ApplicationError{
	msg:  "quit not allowed from this entry point",
	kind: CancelNotAllowed,
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// DirectoryError represents errors raised while listing a directory
type DirectoryError struct {
	ApplicationError
	path string
}

// NewDirectoryError creates a new directory error
func NewDirectoryError(msg string, path string, err error) *DirectoryError {
	return &DirectoryError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: DirectoryUnreadable,
		},
		path: path,
	}
}

// Error returns the directory error message
func (e *DirectoryError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the directory path associated with the error
func (e *DirectoryError) Path() string {
	return e.path
}

// TerminalError represents errors raised by terminal I/O
type TerminalError struct {
	ApplicationError
	op string
}

// NewTerminalError creates a new terminal error for the given operation
func NewTerminalError(op string, err error) *TerminalError {
	return &TerminalError{
		ApplicationError: ApplicationError{
			msg:  "terminal failure",
			err:  err,
			kind: TerminalIO,
		},
		op: op,
	}
}

// Error returns the terminal error message
func (e *TerminalError) Error() string {
	if e.op != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.op, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.op)
	}
	return e.ApplicationError.Error()
}

// Op returns the terminal operation associated with the error
func (e *TerminalError) Op() string {
	return e.op
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsDirectoryUnreadable checks if the error is a directory listing failure
func IsDirectoryUnreadable(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Kind() == DirectoryUnreadable
	}
	return false
}

// IsTerminalIO checks if the error is a terminal I/O failure
func IsTerminalIO(err error) bool {
	var termErr *TerminalError
	if errors.As(err, &termErr) {
		return termErr.Kind() == TerminalIO
	}
	return false
}

// IsCancelNotAllowed checks if the error is the cancellation contract guard
func IsCancelNotAllowed(err error) bool {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Kind() == CancelNotAllowed
	}
	return false
}
