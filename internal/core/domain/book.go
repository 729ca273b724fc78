package domain

import (
	"github.com/goccy/go-json"
)

// Field names as they appear in raw records.
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldPublisher = "publisher"
	FieldPrice     = "price"
	FieldISBN10    = "isbn_10"
	FieldISBN13    = "isbn_13"
	FieldSubtitle  = "subtitle"
)

// FieldValidator checks a present text value and returns the value to store.
type FieldValidator func(value string) (string, error)

// fieldValidators binds text fields to the rule NewBook runs on them. Absent
// values are never validated. isbn_13 has no rule.
var fieldValidators = map[string]FieldValidator{
	FieldISBN10: ValidateISBN10,
}

// OptionalText is a text value that may be absent. The zero value is absent,
// which is distinct from the empty string.
type OptionalText struct {
	value string
	set   bool
}

func SomeText(s string) OptionalText {
	return OptionalText{value: s, set: true}
}

func (o OptionalText) Get() (string, bool) {
	return o.value, o.set
}

func (o OptionalText) IsSet() bool {
	return o.set
}

// String returns the value, or "" when absent.
func (o OptionalText) String() string {
	return o.value
}

func (o OptionalText) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// BookInput carries typed field values into NewBook.
type BookInput struct {
	Title     string
	Author    string
	Publisher string
	Price     float64
	ISBN10    OptionalText
	ISBN13    OptionalText
	Subtitle  OptionalText
}

// Book is a validated, immutable book record. Only NewBook produces one.
type Book struct {
	title     string
	author    string
	publisher string
	price     float64
	isbn10    OptionalText
	isbn13    OptionalText
	subtitle  OptionalText
}

// NewBook runs the field validators over in and returns the book. A validator
// failure is returned as a *FieldError wrapping the validator's error, and no
// book is returned.
func NewBook(in BookInput) (Book, error) {
	optional := []struct {
		field string
		value *OptionalText
	}{
		{FieldISBN10, &in.ISBN10},
		{FieldISBN13, &in.ISBN13},
		{FieldSubtitle, &in.Subtitle},
	}
	for _, f := range optional {
		validate, ok := fieldValidators[f.field]
		if !ok {
			continue
		}
		v, present := f.value.Get()
		if !present {
			continue
		}
		checked, err := validate(v)
		if err != nil {
			return Book{}, &FieldError{Field: f.field, Err: err}
		}
		*f.value = SomeText(checked)
	}

	return Book{
		title:     in.Title,
		author:    in.Author,
		publisher: in.Publisher,
		price:     in.Price,
		isbn10:    in.ISBN10,
		isbn13:    in.ISBN13,
		subtitle:  in.Subtitle,
	}, nil
}

func (b Book) Title() string          { return b.title }
func (b Book) Author() string         { return b.author }
func (b Book) Publisher() string      { return b.publisher }
func (b Book) Price() float64         { return b.price }
func (b Book) ISBN10() OptionalText   { return b.isbn10 }
func (b Book) ISBN13() OptionalText   { return b.isbn13 }
func (b Book) Subtitle() OptionalText { return b.subtitle }

type bookJSON struct {
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Publisher string       `json:"publisher"`
	Price     float64      `json:"price"`
	ISBN10    OptionalText `json:"isbn_10"`
	ISBN13    OptionalText `json:"isbn_13"`
	Subtitle  OptionalText `json:"subtitle"`
}

func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{
		Title:     b.title,
		Author:    b.author,
		Publisher: b.publisher,
		Price:     b.price,
		ISBN10:    b.isbn10,
		ISBN13:    b.isbn13,
		Subtitle:  b.subtitle,
	})
}
