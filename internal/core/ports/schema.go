package ports

// SchemaSource supplies the JSON Schema document raw book records are linted
// against.
type SchemaSource interface {
	BookSchema() ([]byte, error)
}
