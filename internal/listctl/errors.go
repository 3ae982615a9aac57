package listctl

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matchable with errors.Is.
var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID reports an id that already exists in the collection.
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrNoActiveEdit reports a commit without a pending edit.
	ErrNoActiveEdit = errors.New("no edit in progress")
	// ErrInvalidPageSize reports a non-positive page size.
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// Field error reasons.
const (
	ReasonRequired     = "is required"
	ReasonNotNumber    = "must be a number"
	ReasonOutOfRange   = "is out of range"
	ReasonUnknownField = "is not a known field"
	ReasonReadOnly     = "cannot be changed"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field  string `json:"field"  yaml:"field"`
	Reason string `json:"reason" yaml:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

// Missing reports whether the field was rejected for being empty.
func (e FieldError) Missing() bool {
	return e.Reason == ReasonRequired
}

// ValidationError lists every field that failed validation. The operation
// that returned it made no change to the collection.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Reason)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MissingFields returns the names of required fields left empty.
func (e *ValidationError) MissingFields() []string {
	var out []string
	for _, f := range e.Fields {
		if f.Missing() {
			out = append(out, f.Field)
		}
	}
	return out
}

// InvalidFields returns the names of fields whose value was rejected.
func (e *ValidationError) InvalidFields() []string {
	var out []string
	for _, f := range e.Fields {
		if !f.Missing() {
			out = append(out, f.Field)
		}
	}
	return out
}

// NotFoundError reports an operation on an id absent from the collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
