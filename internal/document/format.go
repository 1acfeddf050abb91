package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies the serialization of a document
type Format int

const (
	// FormatJSON is a .json document
	FormatJSON Format = iota
	// FormatYAML is a .yaml or .yml document
	FormatYAML
)

var (
	// ErrUnsupportedFormat is returned for file extensions without a codec
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrParse wraps every decoding failure
	ErrParse = errors.New("malformed document")
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// DetectFormat picks the format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// UpdatedPath returns where the reconciled version of translationPath is
// written: <stem>_updated<ext>, next to the translation file unless
// outputDir is set.
func UpdatedPath(translationPath, outputDir string) string {
	dir, base := filepath.Split(translationPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + "_updated" + ext

	if outputDir != "" {
		dir = outputDir
	}
	return filepath.Join(dir, name)
}
