// Package validation checks inbound payloads before they reach the domain.
//
// A payload is first checked against a JSON schema for shape, types,
// lengths and ranges. Typed values are then extracted field by field.
// All failures are collected and reported together as an *Error.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrValidation is wrapped by every *Error.
var ErrValidation = errors.New("validation failed")

// FieldError describes why a field is invalid.
type FieldError struct {
	Field  string `json:"field" example:"amount"`
	Reason string `json:"reason" example:"must be greater than zero"`
}

// Error is a validation failure for one or more fields.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	reasons := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		reasons = append(reasons, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(reasons, "; "))
}

func (e *Error) Unwrap() error {
	return ErrValidation
}

// newError returns an *Error for the field errors, sorted by field
// name. It returns nil if there are none.
func newError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}

	sorted := make([]FieldError, len(fields))
	copy(sorted, fields)
	slices.SortStableFunc(sorted, func(a, b FieldError) int {
		return strings.Compare(a.Field, b.Field)
	})

	return &Error{Fields: sorted}
}

// Fields returns the field errors of err if it is a validation error.
func Fields(err error) ([]FieldError, bool) {
	var v *Error
	if errors.As(err, &v) {
		return v.Fields, true
	}
	return nil, false
}
