// Package validation provides field-level checks over decoded JSON payloads.
// Payloads are kept as dynamic maps so partial updates can distinguish an
// absent field from an explicit zero or null.
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldError reports a problem with a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Payload is a decoded JSON request body.
type Payload map[string]interface{}

// Has reports whether the field was present in the request, even as null.
func (p Payload) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// Require fails when the field is missing, null or an empty string.
func (p Payload) Require(field string) error {
	v, ok := p[field]
	if !ok || v == nil {
		return &FieldError{Field: field, Message: "is required"}
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// RequireAll fails on the first missing field in order.
func (p Payload) RequireAll(fields ...string) error {
	for _, f := range fields {
		if err := p.Require(f); err != nil {
			return err
		}
	}
	return nil
}

// String returns the field as a string.
func (p Payload) String(field string) (string, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return "", &FieldError{Field: field, Message: "is required"}
	}
	s, isStr := v.(string)
	if !isStr {
		return "", &FieldError{Field: field, Message: "must be a string"}
	}
	return s, nil
}

// StringPtr returns the field as a nullable string. Absent and null both
// yield nil.
func (p Payload) StringPtr(field string) (*string, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return nil, &FieldError{Field: field, Message: "must be a string"}
	}
	return &s, nil
}

// Float coerces the field to a decimal amount. JSON numbers are accepted
// directly; numeric strings are parsed.
func (p Payload) Float(field string) (float64, error) {
	v, ok := p[field]
	if !ok || v == nil {
		return 0, &FieldError{Field: field, Message: "is required"}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, &FieldError{Field: field, Message: "is not numeric"}
		}
		return f, nil
	default:
		return 0, &FieldError{Field: field, Message: "is not numeric"}
	}
}

// FloatOr is Float with a fallback for absent or null fields.
func (p Payload) FloatOr(field string, fallback float64) (float64, error) {
	if v, ok := p[field]; !ok || v == nil {
		return fallback, nil
	}
	return p.Float(field)
}

// Int coerces the field to an integer identifier.
func (p Payload) Int(field string) (int64, error) {
	f, err := p.Float(field)
	if err != nil {
		return 0, err
	}
	n := int64(f)
	if float64(n) != f {
		return 0, &FieldError{Field: field, Message: "must be an integer"}
	}
	return n, nil
}

// IntPtr returns the field as a nullable integer identifier. Absent and
// null both yield nil.
func (p Payload) IntPtr(field string) (*int64, error) {
	if v, ok := p[field]; !ok || v == nil {
		return nil, nil
	}
	n, err := p.Int(field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// OneOf fails unless the field's value is in the allowed set.
func (p Payload) OneOf(field string, allowed []string) (string, error) {
	s, err := p.String(field)
	if err != nil {
		return "", err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", &FieldError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}
