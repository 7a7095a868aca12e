// Package config resolves the CLI settings from built-in defaults, an optional config
// file and the flags given on the command line, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"

	"github.com/tjbenton/to/internal/document"
	"github.com/tjbenton/to/internal/match"
	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
	"github.com/tjbenton/to/to"
)

// ErrInvalid is returned when a resolved setting has an unsupported value.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved CLI settings.
type Config struct {
	// Format is the output format. Empty means the format of the first input.
	Format document.Format `mapstructure:"format"`
	// Output is the file to write to. Empty means stdout.
	Output string `mapstructure:"output"`
	// KeyField names the key field of object entries.
	KeyField string `mapstructure:"key_field"`
	// LogLevel is one of debug, info, warn, error or none.
	LogLevel slogx.LogLevel `mapstructure:"log_level"`
	// LogFormat is one of text, json or text-no-time.
	LogFormat slogx.LogFormat `mapstructure:"log_format"`
}

// Defaults returns the built-in settings as a mapping.
func Defaults() *ordered.Map {
	return ordered.FromPairs(
		ordered.Pair{Key: "format", Value: ""},
		ordered.Pair{Key: "output", Value: ""},
		ordered.Pair{Key: "key_field", Value: "key"},
		ordered.Pair{Key: "log_level", Value: string(slogx.LogLevelWarn)},
		ordered.Pair{Key: "log_format", Value: string(slogx.TextWithoutTimeFormat)},
	)
}

// Load resolves the settings. path is an optional config file in any readable document
// format. Only the flags of fs that were set on the command line override the file.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	layers := []any{Defaults()}

	if path != "" {
		file, err := document.LoadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to load config: %w", err)
		}

		if file != nil && !kind.IsMapping(file) {
			return Config{}, fmt.Errorf("%w: %s is a %s, not a mapping", ErrInvalid, path, kind.Of(file).Name())
		}

		layers = append(layers, file)
	}

	if fs != nil {
		layers = append(layers, FlagOverrides(fs))
	}

	settings := to.Extend(ordered.New(), layers...)

	return Decode(settings)
}

// FlagOverrides collects the changed flags of fs whose names match a setting.
// Dashes in flag names stand for underscores in setting keys.
func FlagOverrides(fs *pflag.FlagSet) *ordered.Map {
	known := Defaults()
	out := ordered.New()

	fs.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if known.Has(key) {
			out.Set(key, f.Value.String())
		}
	})

	return out
}

// Decode turns a settings mapping into a validated Config. Unknown keys are an error.
func Decode(settings ordered.Mapping) (Config, error) {
	known := Defaults()
	for _, k := range settings.Keys() {
		if known.Has(k) {
			continue
		}

		if suggestion, ok := match.Closest(k, known.Keys()); ok {
			return Config{}, fmt.Errorf("%w: unknown setting %q, did you mean %q?", ErrInvalid, k, suggestion)
		}
	}

	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to create config decoder: %w", err)
	}

	err = decoder.Decode(plain(settings))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	if c.Format != "" {
		format, err := document.ParseFormat(string(c.Format))
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
		}

		c.Format = format
	}

	level, err := slogx.ParseLogLevel(c.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	format, err := slogx.ParseLogFormat(c.LogFormat)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	c.LogLevel, c.LogFormat = level, format

	if c.KeyField == "" {
		c.KeyField = "key"
	}

	return c, nil
}

func plain(m ordered.Mapping) map[string]any {
	out := make(map[string]any, m.Len())
	for _, k := range m.Keys() {
		out[k], _ = m.Get(k)
	}

	return out
}
