package service

import "errors"

var (
	// ErrNotFound is returned when the addressed game or participant does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden covers private games, repeat participation and full games.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned for malformed requests the binding layer cannot catch.
	ErrInvalidInput = errors.New("invalid input")
)

// Error carries the message shown to API clients. errors.Is matches its Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func forbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

func invalidInput(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }
