package ingest

import "errors"

// ErrInvalidInput is returned when a source descriptor is missing, malformed or
// points at something that cannot be used as content.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound is returned when the referenced video does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientContent is returned when a scraped page yields too little text.
var ErrInsufficientContent = errors.New("insufficient content")

// ErrGenerationFailed is returned when no generation backend produced a response.
var ErrGenerationFailed = errors.New("generation failed")

// ErrExtractionEmpty is returned when the backend response contains no usable questions.
var ErrExtractionEmpty = errors.New("failed to generate valid questions")

// ErrRateLimited is the signal a Backend returns when the provider throttled the call.
// Backends wrap it so callers can test with errors.Is.
var ErrRateLimited = errors.New("generation backend rate limited")

// Error pairs a sentinel Kind with the message safe to show API clients.
// Err is the underlying cause, kept for logs and errors.Is.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.Error() + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}
