package document

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tjbenton/to/ordered"
)

// LoadFile reads and parses the document at path, picking the format from its extension.
func LoadFile(path string) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	v, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Load parses a whole stream.
func Load(r io.Reader, format Format) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes data. Mappings come back as *ordered.Map and sequences as []any.
// An empty YAML document decodes to nil.
func Parse(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		v, err := ordered.ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}

		return v, nil
	case FormatYAML:
		var node yaml.Node

		err := yaml.Unmarshal(data, &node)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}

		if node.Kind == 0 {
			return nil, nil
		}

		return ordered.DecodeYAML(&node)
	case FormatTOML:
		var table map[string]any

		err := toml.Unmarshal(data, &table)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}

		return ordered.FromMap(table), nil
	case FormatDump:
		return nil, fmt.Errorf("%w: %s", ErrNotReadable, format)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
