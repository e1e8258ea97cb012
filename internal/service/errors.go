package service

import (
	"errors"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("not found")
	ErrExtraction              = errors.New("extraction error")
	ErrGenerationService       = errors.New("generation service error")
	ErrGenerationNotConfigured = errors.New("generation service not configured")
	ErrMalformedOutput         = errors.New("malformed generation output")
	ErrStorage                 = errors.New("storage error")
)

// Error carries a user-facing Message, its Kind, and the underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func validationError(msg string) *Error { return newError(ErrValidation, msg, nil) }

func storageError(msg string, cause error) *Error { return newError(ErrStorage, msg, cause) }

// PublicMessage returns the message safe to show to a client.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}
