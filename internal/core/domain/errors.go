package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an identifier does not resolve to an existing row.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a uniqueness invariant,
// e.g. inserting a device with a hardware address that already exists.
var ErrConflict = errors.New("conflict")

// ValidationError rejects a caller-supplied value before any query runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
