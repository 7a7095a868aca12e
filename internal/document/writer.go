package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Marshal encodes v in the given format.
func Marshal(v any, format Format) ([]byte, error) {
	var buf bytes.Buffer

	err := Encode(&buf, v, format)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Encode writes v to w in the given format, followed by a newline.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return enc.Close()
	case FormatTOML:
		return encodeTOML(w, v)
	case FormatDump:
		dumpConfig.Fdump(w, plain(v))
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile encodes v into the file at path. An empty format is taken from the
// extension of path.
func WriteFile(path string, v any, format Format) error {
	if format == "" {
		var err error

		format, err = FormatFromPath(path)
		if err != nil {
			return err
		}
	}

	data, err := Marshal(v, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}

func encodeJSON(w io.Writer, v any) error {
	data, err := jsonAPI.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	var buf bytes.Buffer

	err = json.Indent(&buf, data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to indent JSON: %w", err)
	}

	buf.WriteByte('\n')

	_, err = buf.WriteTo(w)

	return err
}

func encodeTOML(w io.Writer, v any) error {
	if !kind.IsMapping(v) {
		return fmt.Errorf("%w: got %s", ErrNotTable, kind.Of(v).Name())
	}

	err := toml.NewEncoder(w).Encode(plain(v))
	if err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}

	return nil
}

// plain strips *ordered.Map down to map[string]any for encoders that do not know it.
func plain(v any) any {
	switch typed := v.(type) {
	case *ordered.Map:
		return typed.ToMap()
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plain(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[k] = plain(item)
		}

		return out
	default:
		return v
	}
}
