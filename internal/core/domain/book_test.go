package domain

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
)

func TestNewBookValidatesISBN10(t *testing.T) {
	_, err := NewBook(BookInput{
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		Publisher: "Prentice Hall",
		Price:     35.5,
		ISBN10:    SomeText("0136091811"),
	})
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected format error, got %v", err)
	}
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != FieldISBN10 {
		t.Fatalf("expected isbn_10 field error, got %v", err)
	}
}

func TestNewBookLeavesISBN13Unchecked(t *testing.T) {
	b, err := NewBook(BookInput{
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		Publisher: "Prentice Hall",
		Price:     35.5,
		ISBN13:    SomeText("not-an-isbn"),
	})
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	if got, _ := b.ISBN13().Get(); got != "not-an-isbn" {
		t.Fatalf("unexpected isbn_13: %q", got)
	}
	if b.ISBN10().IsSet() {
		t.Fatal("isbn_10 should be absent")
	}
}

func TestOptionalTextZeroValueIsAbsent(t *testing.T) {
	var o OptionalText
	if o.IsSet() {
		t.Fatal("zero value should be absent")
	}
	empty := SomeText("")
	if !empty.IsSet() {
		t.Fatal("empty string should be present")
	}
	if o == empty {
		t.Fatal("absent and empty must differ")
	}
}

func TestBookMarshalJSON(t *testing.T) {
	b, err := NewBook(BookInput{
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		Publisher: "Prentice Hall",
		Price:     35.5,
		ISBN10:    SomeText("0-13-609181-4"),
	})
	if err != nil {
		t.Fatalf("new book: %v", err)
	}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["isbn_10"] != "0-13-609181-4" {
		t.Fatalf("unexpected isbn_10: %v", got["isbn_10"])
	}
	if v, ok := got["subtitle"]; !ok || v != nil {
		t.Fatalf("expected null subtitle, got %v", v)
	}
	if got["price"] != 35.5 {
		t.Fatalf("unexpected price: %v", got["price"])
	}
}
