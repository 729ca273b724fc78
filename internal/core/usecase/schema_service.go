package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	santhosh "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/ports"
)

const schemaURL = "book.schema.json"

// Violation is one problem found while linting a batch.
type Violation struct {
	Index   int    // position of the record in the batch
	Path    string // JSON Pointer inside the record, "" for the record itself
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("#%d %s: %s", v.Index, v.Path, v.Message)
}

// SchemaService lints batches of raw records. Unlike BookService.ConstructAll
// it reports every problem it finds instead of stopping at the first.
type SchemaService struct {
	source ports.SchemaSource
	books  *BookService

	once     sync.Once
	compiled *santhosh.Schema
	err      error
}

func NewSchemaService(source ports.SchemaSource, books *BookService) *SchemaService {
	return &SchemaService{source: source, books: books}
}

// Lint checks each record against the book JSON Schema, then runs records that
// pass through BookService.Construct to catch field rule failures.
func (s *SchemaService) Lint(raws []domain.RawRecord) ([]Violation, error) {
	sch, err := s.schema()
	if err != nil {
		return nil, err
	}

	var violations []Violation
	for i, raw := range raws {
		msgs := runValidation(sch, raw)
		if len(msgs) > 0 {
			for _, m := range msgs {
				violations = append(violations, Violation{Index: i, Path: m.path, Message: m.message})
			}
			continue
		}
		if _, err := s.books.Construct(raw); err != nil {
			violations = append(violations, constructionViolation(i, err))
		}
	}
	return violations, nil
}

func (s *SchemaService) schema() (*santhosh.Schema, error) {
	s.once.Do(func() {
		doc, err := s.source.BookSchema()
		if err != nil {
			s.err = fmt.Errorf("load schema: %w", err)
			return
		}
		s.compiled, s.err = compileSchema(doc)
		if s.err != nil {
			s.err = fmt.Errorf("compile schema: %w", s.err)
		}
	})
	return s.compiled, s.err
}

// compileSchema builds a *santhosh.Schema from raw JSON.
func compileSchema(schemaJSON []byte) (*santhosh.Schema, error) {
	compiler := santhosh.NewCompiler()
	compiler.Draft = santhosh.Draft7
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

type schemaMessage struct {
	path    string
	message string
}

// runValidation validates one record against a pre-compiled schema.
func runValidation(sch *santhosh.Schema, raw domain.RawRecord) []schemaMessage {
	err := sch.Validate(map[string]any(raw))
	if err == nil {
		return nil
	}
	var ve *santhosh.ValidationError
	if errors.As(err, &ve) {
		return collectValidationErrors(ve)
	}
	return []schemaMessage{{message: err.Error()}}
}

func collectValidationErrors(ve *santhosh.ValidationError) []schemaMessage {
	var msgs []schemaMessage
	for _, cause := range ve.Causes {
		msgs = append(msgs, collectValidationErrors(cause)...)
	}
	if len(ve.Causes) == 0 {
		msgs = append(msgs, schemaMessage{path: ve.InstanceLocation, message: ve.Message})
	}
	return msgs
}

func constructionViolation(index int, err error) Violation {
	v := Violation{Index: index, Message: err.Error()}
	var se *domain.SchemaError
	var fe *domain.FieldError
	switch {
	case errors.As(err, &fe):
		v.Path = "/" + fe.Field
		v.Message = fe.Err.Error()
	case errors.As(err, &se):
		v.Path = "/" + se.Field
		v.Message = se.Reason
	}
	return v
}
