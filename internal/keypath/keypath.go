// Package keypath builds and parses the dotted path keys produced by flattening
// nested mappings ("a.b.c").
package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the keys of nested mappings.
const Separator = "."

var (
	// ErrEmptyPath is returned when parsing an empty path key.
	ErrEmptyPath = errors.New("empty path")
	// ErrEmptySegment is returned when a path key has an empty segment, e.g. "a..b".
	ErrEmptySegment = errors.New("empty path segment")
)

// Join appends key to prefix. An empty prefix yields key unchanged.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + Separator + key
}

// Parse splits a path key into its segments.
// Supports: "Field", "Nested.Field", "a.b.c".
func Parse(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	segments := strings.Split(path, Separator)
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("invalid path %q: %w", path, ErrEmptySegment)
		}
	}

	return segments, nil
}
