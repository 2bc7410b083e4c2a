package errors

import (
	"fmt"
	"strings"
)

// Error is a user-facing failure raised by the session or CLI layer, with
// optional suggestions and hint.
type Error struct {
	Type        ErrorType
	Message     string
	Cause       error
	Suggestions []string
	Hint        string // Shown when no suggestions (e.g. empty store)
}

type ErrorType int

const (
	ErrSongNotFound ErrorType = iota
	ErrInvalidTitle
	ErrInvalidOption
	ErrLexicon
	ErrCatalog
	ErrInput
)

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type.String(), e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, " (%v)", e.Cause)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprint(&b, "\nDid you mean:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	} else if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", e.Hint)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same Type, so callers can test
// errors.Is(err, &Error{Type: ErrSongNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

func (t ErrorType) String() string {
	switch t {
	case ErrSongNotFound:
		return "song not found"
	case ErrInvalidTitle:
		return "invalid title"
	case ErrInvalidOption:
		return "invalid option"
	case ErrLexicon:
		return "lexicon error"
	case ErrCatalog:
		return "catalog error"
	case ErrInput:
		return "input error"
	default:
		return "error"
	}
}

// New returns an *Error of the given type.
func New(t ErrorType, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error of the given type caused by err.
func Wrap(t ErrorType, err error, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...), Cause: err}
}
