// Package apperr defines the error type shared by all tanss packages.
// Each package declares its errors as sentinel values and derives
// concrete errors from them with Fmt or Wrap, so that callers can match
// with errors.Is against the sentinel.
package apperr

import "fmt"

// Error is an application error with an optional message template and
// an underlying cause.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap returns a copy of the error with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
