package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrRequestFailed       = errors.New("a request has failed")
	ErrValidation          = errors.New("validation error")

	// ErrPageNotFound is returned by the source client when a title has no
	// retrievable revision. The resolver never lets it escape.
	ErrPageNotFound = errors.New("page not found")

	// ErrRedirectLimit marks a resolution that exceeded its redirect budget.
	// It is always reported wrapped together with ErrRequestFailed.
	ErrRedirectLimit = errors.New("redirect limit exceeded")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LookupError is the terminal failure of a resolution. Word is the title the
// failure concerns, which is not always the word that was asked for.
type LookupError struct {
	Word string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %q: %v", e.Word, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ErrorKind is a stable, presentation-free classification of an error.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindUnsupportedLanguage ErrorKind = "unsupported_language"
	KindNotFound            ErrorKind = "not_found"
	KindRequestFailed       ErrorKind = "request_failed"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindUnknown             ErrorKind = "unknown"
)

// Kind classifies err. RequestFailed wins over NotFound when both are wrapped.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindInvalidInput
	case errors.Is(err, ErrUnsupportedLanguage):
		return KindUnsupportedLanguage
	case errors.Is(err, ErrRequestFailed):
		return KindRequestFailed
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnknown
	}
}
