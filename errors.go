package hypotest

import (
	"errors"
	"fmt"
)

// Kind classifies the errors returned by this package.
type Kind int

const (
	// InvalidArgument marks a caller input outside the domain of a test.
	InvalidArgument Kind = iota + 1
	// NumericError marks a distribution that returned a non-finite or out-of-range value.
	NumericError
	// ConfigurationError marks an inconsistent combination of optional inputs.
	ConfigurationError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case NumericError:
		return "numeric error"
	case ConfigurationError:
		return "configuration error"
	}
	return "unknown error"
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrNumeric         = &Error{Kind: NumericError}
	ErrConfiguration   = &Error{Kind: ConfigurationError}
)

// Error is the error type returned by all constructors and queries of this package.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or 0 if err was not produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
