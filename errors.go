package settlement

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned while building an instruction or querying
// a report wraps one of them.
var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError reports the field that failed and why.
type FieldError struct {
	Kind   error  // Kind is ErrMissingField or ErrInvalidValue.
	Field  string // Field is the human name of the field, e.g. "agreed fx rate".
	Reason string // Reason is the violated constraint, empty for missing fields.
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v %q", e.Kind, e.Field)
	}
	return fmt.Sprintf("%v for %q: %s", e.Kind, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func missing(field string) error { return &FieldError{Kind: ErrMissingField, Field: field} }

func invalid(field, reason string) error {
	return &FieldError{Kind: ErrInvalidValue, Field: field, Reason: reason}
}
