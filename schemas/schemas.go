package schemas

import (
	"embed"
	"fmt"
)

// BookURL is the resource name the book schema is registered under.
const BookURL = "book.schema.json"

//go:embed *.schema.json
var schemaFS embed.FS

// Embedded serves the schema documents compiled into the binary.
type Embedded struct{}

// BookSchema returns the JSON Schema document for a single raw book record.
func (Embedded) BookSchema() ([]byte, error) {
	b, err := schemaFS.ReadFile(BookURL)
	if err != nil {
		return nil, fmt.Errorf("read book schema: %w", err)
	}
	return b, nil
}
