package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a single field-level validation failure.
// It implements the error interface and provides context about which field
// failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ValidationErrors collects every violated field of a payload, not just the
// first, so the caller can report all of them at once.
type ValidationErrors []*ValidationError

// Error joins all field messages into a single error string.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Details returns the violations as a field-keyed map suitable for a JSON
// error response body.
func (e ValidationErrors) Details() map[string][]string {
	details := make(map[string][]string, len(e))
	for _, v := range e {
		details[v.Field] = append(details[v.Field], v.Message)
	}
	return details
}

// OrNil returns the collection as an error, or nil when no field failed.
// A typed nil slice wrapped in an error interface would compare non-nil,
// so callers must use this instead of returning the slice directly.
func (e ValidationErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
