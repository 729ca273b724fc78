package domain

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Schema error reasons. Type mismatches use "expected <kind>, got <kind>".
const (
	ReasonRequired      = "field required"
	ReasonNull          = "value must not be null"
	ReasonInvalidNumber = "value is not a valid number"
)

// SchemaError is returned when a raw record does not fit the book schema: a
// required field is missing or null, a field has the wrong type, or price
// cannot be read as a number.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FormatError is returned by a field validator when a present text value
// breaks its rule. Value is the original input, untouched.
type FormatError struct {
	Value   string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Value)
}

// FieldError ties a field validator failure to the field it ran on.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func typeMismatch(field, want string, got any) *SchemaError {
	return &SchemaError{Field: field, Reason: fmt.Sprintf("expected %s, got %s", want, KindOf(got))}
}

// KindOf names the JSON kind of a decoded value.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "text"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case json.Number:
		return "number"
	}
	if _, ok := numberOf(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
