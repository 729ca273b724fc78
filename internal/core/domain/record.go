package domain

import (
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// RawRecord is one undecoded record as produced by a loader.
type RawRecord map[string]any

// Text reads a required text field.
func (r RawRecord) Text(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", &SchemaError{Field: field, Reason: ReasonRequired}
	}
	if v == nil {
		return "", &SchemaError{Field: field, Reason: ReasonNull}
	}
	s, ok := v.(string)
	if !ok {
		return "", typeMismatch(field, "text", v)
	}
	return s, nil
}

// OptionalText reads a text field that may be absent or null.
func (r RawRecord) OptionalText(field string) (OptionalText, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return OptionalText{}, nil
	}
	s, ok := v.(string)
	if !ok {
		return OptionalText{}, typeMismatch(field, "text", v)
	}
	return SomeText(s), nil
}

// Number reads a required numeric field. Numeric strings are coerced; booleans
// are not.
func (r RawRecord) Number(field string) (float64, error) {
	v, ok := r[field]
	if !ok {
		return 0, &SchemaError{Field: field, Reason: ReasonRequired}
	}
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, &SchemaError{Field: field, Reason: ReasonNull}
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, &SchemaError{Field: field, Reason: ReasonInvalidNumber}
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, &SchemaError{Field: field, Reason: ReasonInvalidNumber}
		}
		f = parsed
	default:
		parsed, ok := numberOf(v)
		if !ok {
			return 0, typeMismatch(field, "number", v)
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &SchemaError{Field: field, Reason: ReasonInvalidNumber}
	}
	return f, nil
}

// numberOf converts the numeric types JSON and YAML decoders produce.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
