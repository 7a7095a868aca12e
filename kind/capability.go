package kind

import (
	"reflect"

	"github.com/tjbenton/to/ordered"
)

// IsMapping reports whether v is a keyed container.
func IsMapping(v any) bool {
	return Of(v) == KindMapping
}

// IsSequence reports whether v is an ordered container.
func IsSequence(v any) bool {
	return Of(v) == KindSequence
}

// AsMapping returns v as a Mapping.
//
// *ordered.Map, ordered.Plain, map[string]any and other Mapping implementations are
// returned as views, so writes reach v. Any other map with string keys is copied into a
// new *ordered.Map with sorted keys.
func AsMapping(v any) (ordered.Mapping, bool) {
	if Of(v) != KindMapping {
		return nil, false
	}

	switch typed := v.(type) {
	case map[string]any:
		return ordered.Plain(typed), true
	case ordered.Mapping:
		return typed, true
	}

	rv := reflect.ValueOf(v)
	plain := make(ordered.Plain, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		plain[iter.Key().String()] = iter.Value().Interface()
	}

	m := ordered.New(len(plain))
	for _, k := range plain.Keys() {
		m.Set(k, plain[k])
	}

	return m, true
}

// AsSequence returns v as a []any. A []any is returned as is, other slices and arrays
// are copied element by element.
func AsSequence(v any) ([]any, bool) {
	if typed, ok := v.([]any); ok {
		return typed, true
	}

	if Of(v) != KindSequence {
		return nil, false
	}

	rv := reflect.ValueOf(v)

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}
