package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/fi-rise/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyBody   = errors.New("the request body must not be empty")
	ErrInvalidJSON = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
)

// Largest amount that can be stored.
var maxAmount = decimal.RequireFromString("99999999.99")

// Range of integer fields, IDs included.
var (
	minInt = decimal.NewFromInt(math.MinInt32)
	maxInt = decimal.NewFromInt(math.MaxInt32)
)

// Payload is a JSON object that passed its schema check. Typed values are
// read with the accessor methods, which record a FieldError for values
// that cannot be converted. Fields that already failed the schema check
// are not checked again.
type Payload struct {
	fields map[string]json.RawMessage
	failed map[string]bool
	errs   []FieldError
}

// Parse checks the body against the schema and returns the payload.
//
// The returned error is ErrEmptyBody or ErrInvalidJSON if the body is not
// a JSON object. Schema violations are recorded on the payload and
// reported by Err.
func Parse(schema Schema, body []byte) (*Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, ErrInvalidJSON
	}

	errs, err := schema.check(body)
	if err != nil {
		return nil, ErrInvalidJSON
	}

	p := &Payload{
		fields: fields,
		failed: make(map[string]bool),
		errs:   errs,
	}

	for _, e := range errs {
		p.failed[e.Field] = true
	}

	return p, nil
}

// Err returns an *Error with all recorded field errors, or nil.
func (p *Payload) Err() error {
	return newError(p.errs)
}

func (p *Payload) fail(field, reason string) {
	p.errs = append(p.errs, FieldError{Field: field, Reason: reason})
	p.failed[field] = true
}

// raw returns the value of the field if it is present, valid so far and
// not null.
func (p *Payload) raw(field string) (json.RawMessage, bool) {
	if p.failed[field] {
		return nil, false
	}

	v, ok := p.fields[field]
	if !ok || p.IsNull(field) {
		return nil, false
	}
	return v, true
}

// Has reports whether the field is present, including explicit nulls.
func (p *Payload) Has(field string) bool {
	_, ok := p.fields[field]
	return ok
}

// IsNull reports whether the field is present and null.
func (p *Payload) IsNull(field string) bool {
	v, ok := p.fields[field]
	return ok && string(bytes.TrimSpace(v)) == "null"
}

// String returns the field with surrounding whitespace removed.
// Present fields must not be blank.
func (p *Payload) String(field string) string {
	v, ok := p.raw(field)
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		p.fail(field, "must be a string")
		return ""
	}

	s = strings.TrimSpace(s)
	if s == "" {
		p.fail(field, "must not be blank")
	}
	return s
}

// OptionalString returns nil if the field is absent or null.
func (p *Payload) OptionalString(field string) *string {
	if _, ok := p.raw(field); !ok {
		return nil
	}

	s := p.String(field)
	return &s
}

// Amount returns the field as a decimal amount. It must be greater than
// zero, or not negative if zero is allowed.
func (p *Payload) Amount(field string, allowZero bool) decimal.Decimal {
	v, ok := p.raw(field)
	if !ok {
		return decimal.Zero
	}

	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(v); err != nil {
		p.fail(field, "must be a decimal number")
		return decimal.Zero
	}

	switch {
	case allowZero && amount.IsNegative():
		p.fail(field, "must not be negative")
	case !allowZero && !amount.IsPositive():
		p.fail(field, "must be greater than zero")
	case amount.Exponent() < -2 && !amount.Equal(amount.Round(2)):
		p.fail(field, "must not have more than two decimal places")
	case amount.GreaterThan(maxAmount):
		p.fail(field, fmt.Sprintf("must not be greater than %s", maxAmount))
	}

	return amount
}

// Date returns the field as a calendar date.
func (p *Payload) Date(field string) types.Date {
	v, ok := p.raw(field)
	if !ok {
		return types.Date{}
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		p.fail(field, "must be a string")
		return types.Date{}
	}

	d, err := types.ParseDate(s)
	if err != nil {
		p.fail(field, "must be a valid date in YYYY-MM-DD format")
		return types.Date{}
	}
	return d
}

// OptionalDate returns nil if the field is absent or null.
func (p *Payload) OptionalDate(field string) *types.Date {
	if _, ok := p.raw(field); !ok {
		return nil
	}

	d := p.Date(field)
	return &d
}

// Int returns the field as an integer. Values outside of the int32 range
// are rejected.
func (p *Payload) Int(field string) int {
	v, ok := p.raw(field)
	if !ok {
		return 0
	}

	var n decimal.Decimal
	if err := n.UnmarshalJSON(v); err != nil || !n.IsInteger() {
		p.fail(field, "must be an integer")
		return 0
	}

	if n.LessThan(minInt) || n.GreaterThan(maxInt) {
		p.fail(field, fmt.Sprintf("must be between %s and %s", minInt, maxInt))
		return 0
	}
	return int(n.IntPart())
}

// ID returns the field as a resource ID.
func (p *Payload) ID(field string) uint {
	id := p.Int(field)
	if id < 0 {
		p.fail(field, "must be a positive integer")
		return 0
	}
	return uint(id)
}

// OptionalID returns nil if the field is absent or null.
func (p *Payload) OptionalID(field string) *uint {
	if _, ok := p.raw(field); !ok {
		return nil
	}

	id := p.ID(field)
	return &id
}

// Bool returns the field as a boolean.
func (p *Payload) Bool(field string) bool {
	v, ok := p.raw(field)
	if !ok {
		return false
	}

	var b bool
	if err := json.Unmarshal(v, &b); err != nil {
		p.fail(field, "must be a boolean")
	}
	return b
}
