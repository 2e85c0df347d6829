// Package errs defines the closed set of failure kinds surfaced by the
// service layer, so callers can branch on the kind instead of parsing
// messages.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	// Operation covers storage and any other unexpected failure.
	Operation Kind = iota
	// InvalidArgument means a required input was absent.
	InvalidArgument
	// Validation means an input was present but not acceptable.
	Validation
	// NotFound means the requested identity has no matching row.
	NotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case Validation:
		return "VALIDATION_ERROR"
	case NotFound:
		return "NOT_FOUND"
	default:
		return "OPERATION_FAILED"
	}
}

// Error is the error type returned by the service layer.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

// Error renders "<op>: <message or cause>".
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	if msg == "" {
		return e.Op
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error without an underlying cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap builds an Error around cause. An *Error already in the chain keeps its
// kind so a validation failure raised deep in a call is not downgraded.
// A nil cause yields a nil error.
func Wrap(kind Kind, op string, cause error) error {
	if cause == nil {
		return nil
	}
	var inner *Error
	if errors.As(cause, &inner) {
		kind = inner.Kind
	}
	return &Error{Kind: kind, Op: op, Err: cause}
}

// KindOf reports the kind of err. Errors outside this package are Operation.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Operation
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
