package document

import (
	"fmt"
	"os"

	"codeberg.org/snonux/i18nsync/internal/reconcile"
)

// Document is a decoded file together with where it came from
type Document struct {
	Path   string
	Format Format
	Tree   *reconcile.Tree
}

// Load reads and decodes the file at path
func Load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	tree, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Document{Path: path, Format: format, Tree: tree}, nil
}

// Decode parses data in the given format. The top-level value must be a
// mapping.
func Decode(data []byte, format Format) (*reconcile.Tree, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Encode serializes t in the given format
func Encode(t *reconcile.Tree, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(t)
	case FormatYAML:
		return encodeYAML(t)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save encodes t and writes it to path
func Save(path string, t *reconcile.Tree, format Format) error {
	data, err := Encode(t, format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
