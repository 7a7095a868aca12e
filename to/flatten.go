package to

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tjbenton/to/internal/common"
	"github.com/tjbenton/to/internal/keypath"
	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

// ErrPathConflict is returned by Unflatten when one path key is a prefix of another,
// e.g. "a" and "a.b".
var ErrPathConflict = errors.New("path key conflicts with another key")

// Flatten picks the flattening by the shape of its arguments: when every argument is a
// mapping the result is FlattenMapping, otherwise it is FlattenSequence.
func Flatten(values ...any) any {
	if common.Every(values, kind.IsMapping) {
		mappings := make([]ordered.Mapping, 0, len(values))
		for _, v := range values {
			m, _ := kind.AsMapping(v)
			mappings = append(mappings, m)
		}

		return FlattenMapping(mappings...)
	}

	return FlattenSequence(values...)
}

// FlattenMapping collapses nested mappings into one mapping keyed by dotted paths
// ({"a": {"b": 1}} becomes {"a.b": 1}). Sequences and empty mappings are leaves.
// The entries of all arguments end up in one mapping; a later path key replaces an
// identical earlier one.
func FlattenMapping(mappings ...ordered.Mapping) *ordered.Map {
	out := ordered.New()
	leaf := func(path string, v any) {
		out.Set(path, cloneAny(v))
	}

	for _, m := range mappings {
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			walkLeaves(flattenMappings, k, v, leaf)
		}
	}

	return out
}

// FlattenSequence collects the non-sequence values of arbitrarily nested sequences,
// depth first, left to right. Arguments that are not sequences are kept as they are.
func FlattenSequence(values ...any) []any {
	out := []any{}
	leaf := func(_ string, v any) {
		out = append(out, cloneAny(v))
	}

	for _, v := range values {
		walkLeaves(flattenSequences, "", v, leaf)
	}

	return out
}

type flattenMode int

const (
	flattenSequences flattenMode = iota
	flattenMappings
)

// walkLeaves calls leaf for every value mode does not descend into.
func walkLeaves(mode flattenMode, path string, v any, leaf func(path string, v any)) {
	switch mode {
	case flattenMappings:
		if m, ok := kind.AsMapping(v); ok && m.Len() > 0 {
			for _, k := range m.Keys() {
				item, _ := m.Get(k)
				walkLeaves(mode, keypath.Join(path, k), item, leaf)
			}

			return
		}
	case flattenSequences:
		if s, ok := kind.AsSequence(v); ok {
			for _, item := range s {
				walkLeaves(mode, path, item, leaf)
			}

			return
		}
	}

	leaf(path, v)
}

// Unflatten rebuilds nested mappings from dotted path keys. It reverses FlattenMapping.
func Unflatten(flat ordered.Mapping) (*ordered.Map, error) {
	out := ordered.New()

	for _, key := range flat.Keys() {
		v, _ := flat.Get(key)

		segments, err := keypath.Parse(key)
		if err != nil {
			return nil, err
		}

		node := out

		for i, seg := range segments[:len(segments)-1] {
			next, ok := node.Get(seg)
			if !ok {
				child := ordered.New()
				node.Set(seg, child)
				node = child

				continue
			}

			child, ok := next.(*ordered.Map)
			if !ok {
				return nil, fmt.Errorf("%w: %q holds a value under %q",
					ErrPathConflict, key, strings.Join(segments[:i+1], keypath.Separator))
			}

			node = child
		}

		last := segments[len(segments)-1]
		if _, ok := node.Get(last); ok {
			return nil, fmt.Errorf("%w: %q", ErrPathConflict, key)
		}

		node.Set(last, cloneAny(v))
	}

	return out, nil
}
