package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	// FormatDump is a go-spew dump of the decoded value. It can only be written.
	FormatDump Format = "dump"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("unknown document format")
	// ErrNotReadable is returned when parsing a format that can only be written.
	ErrNotReadable = errors.New("document format cannot be read")
	// ErrNotTable is returned when encoding something other than a mapping as TOML.
	ErrNotTable = errors.New("toml documents must be mappings")
)

// ParseFormat parses a format name, case-insensitively. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatDump:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" || strings.EqualFold(ext, string(FormatDump)) {
		return "", fmt.Errorf("%w: extension of %s", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}
