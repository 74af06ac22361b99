package apperr

import (
	"errors"
	"strings"
)

// Error is a structured failure carrying human-readable messages,
// most relevant first.
type Error struct {
	Messages []string
}

// New builds an Error from one or more messages.
func New(messages ...string) *Error {
	return &Error{Messages: append([]string(nil), messages...)}
}

// From returns err as an *Error, wrapping its text when it is another error type.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(err.Error())
}

// First returns the first message or an empty string.
func (e *Error) First() string {
	if e == nil || len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}
