package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/atvirokodosprendimai/bookcheck/internal/core/domain"
	"github.com/atvirokodosprendimai/bookcheck/internal/core/ports"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrNotArray      = errors.New("document must be an array of records")
	ErrUnknownFormat = errors.New("unknown input format")
)

var _ ports.RecordSource = File{}

// File reads raw records from a JSON or YAML file. Path "-" reads Stdin.
type File struct {
	Path   string
	Format string // FormatJSON, FormatYAML, or "" to detect from the extension
	Stdin  io.Reader
}

func (f File) Records(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := f.format()
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if f.Path == "-" {
		r = f.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		file, err := os.Open(f.Path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		r = file
	}

	if format == FormatYAML {
		return DecodeYAML(r)
	}
	return DecodeJSON(r)
}

func (f File) format() (string, error) {
	switch strings.ToLower(f.Format) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f.Format)
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatJSON, nil
}

// DecodeJSON reads a JSON array of objects. Numbers are kept as json.Number.
func DecodeJSON(r io.Reader) ([]domain.RawRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return toRecords(doc)
}

// DecodeYAML reads a YAML sequence of mappings.
func DecodeYAML(r io.Reader) ([]domain.RawRecord, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return toRecords(doc)
}

func toRecords(doc any) ([]domain.RawRecord, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}
	records := make([]domain.RawRecord, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: expected object, got %s", i, domain.KindOf(item))
		}
		records = append(records, domain.RawRecord(m))
	}
	return records, nil
}
