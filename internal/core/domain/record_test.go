package domain

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestRawRecordText(t *testing.T) {
	r := RawRecord{"title": "Go", "author": nil, "publisher": 12.0}

	if got, err := r.Text("title"); err != nil || got != "Go" {
		t.Fatalf("unexpected title: %q %v", got, err)
	}

	tests := []struct {
		field  string
		reason string
	}{
		{"missing", ReasonRequired},
		{"author", ReasonNull},
		{"publisher", "expected text, got number"},
	}
	for _, tt := range tests {
		_, err := r.Text(tt.field)
		var se *SchemaError
		if !errors.As(err, &se) {
			t.Fatalf("%s: expected schema error, got %v", tt.field, err)
		}
		if se.Field != tt.field || se.Reason != tt.reason {
			t.Fatalf("%s: unexpected error: %+v", tt.field, se)
		}
	}
}

func TestRawRecordOptionalText(t *testing.T) {
	r := RawRecord{"isbn_13": nil, "subtitle": "", "isbn_10": []any{"x"}}

	if o, err := r.OptionalText("isbn_13"); err != nil || o.IsSet() {
		t.Fatalf("null should be absent: %+v %v", o, err)
	}
	if o, err := r.OptionalText("nope"); err != nil || o.IsSet() {
		t.Fatalf("missing should be absent: %+v %v", o, err)
	}
	if o, err := r.OptionalText("subtitle"); err != nil || !o.IsSet() {
		t.Fatalf("empty string should be present: %+v %v", o, err)
	}
	_, err := r.OptionalText("isbn_10")
	var se *SchemaError
	if !errors.As(err, &se) || se.Reason != "expected text, got array" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRawRecordNumberCoercion(t *testing.T) {
	accepted := map[string]any{
		"float":  35.5,
		"int":    35,
		"int64":  int64(35),
		"uint8":  uint8(35),
		"number": json.Number("35.5"),
		"string": "35.5",
	}
	for name, v := range accepted {
		got, err := RawRecord{"price": v}.Number("price")
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != 35.5 && got != 35 {
			t.Fatalf("%s: unexpected value %v", name, got)
		}
	}

	rejected := []struct {
		value  any
		reason string
	}{
		{nil, ReasonNull},
		{true, "expected number, got boolean"},
		{"thirty", ReasonInvalidNumber},
		{"NaN", ReasonInvalidNumber},
		{"1e999", ReasonInvalidNumber},
		{json.Number("1e999"), ReasonInvalidNumber},
		{map[string]any{}, "expected number, got object"},
	}
	for _, tt := range rejected {
		_, err := RawRecord{"price": tt.value}.Number("price")
		var se *SchemaError
		if !errors.As(err, &se) || se.Reason != tt.reason {
			t.Fatalf("%v: unexpected error %v", tt.value, err)
		}
	}

	_, err := RawRecord{}.Number("price")
	var se *SchemaError
	if !errors.As(err, &se) || se.Reason != ReasonRequired {
		t.Fatalf("expected required error, got %v", err)
	}
}
