package advisor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a numeric field that is missing, non-numeric, non-positive or out of range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownEnumValue marks a gender or activity level outside its closed set.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// FieldError describes why a single field was rejected
type FieldError struct {
	Field  string
	Value  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s %q %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalidInput(field, value, reason string) error {
	return &FieldError{Field: field, Value: value, Reason: reason, Err: ErrInvalidInput}
}

func unknownEnum(field, value string) error {
	return &FieldError{Field: field, Value: value, Reason: "is not a recognized value", Err: ErrUnknownEnumValue}
}
