// Package apperr defines the error type shared across Arranger's packages
package apperr

import (
	"fmt"
)

// Error is an application error. Message may contain format verbs that are
// filled in with Fmt.
type Error struct {
	Cause   error
	tmpl    string
	Message string
	Context []any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.tmpl != "" && len(e.Context) > 0 {
		msg = fmt.Sprintf(e.tmpl, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

func (e *Error) template() string {
	if e.tmpl != "" {
		return e.tmpl
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		tmpl:    e.template(),
		Message: fmt.Sprintf(e.template(), args...),
		Context: args,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		tmpl:    e.tmpl,
		Message: e.Message,
		Context: e.Context,
		Cause:   err,
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was derived from the same error template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.template() == t.template()
}
