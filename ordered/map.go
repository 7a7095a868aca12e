package ordered

import (
	"iter"
	"maps"
	"slices"
)

// Map is a string-keyed mapping that remembers the order in which keys were first set.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// Pair is a single key/value entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// New returns an empty Map with room for size entries.
func New(size ...int) *Map {
	n := 0
	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}

	return &Map{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// FromPairs builds a Map from pairs in the given order. A repeated key keeps its first
// position and its last value.
func FromPairs(pairs ...Pair) *Map {
	m := New(len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}

	return m
}

// FromMap converts a plain Go map into a Map, recursing into nested maps and slices.
// Plain maps carry no order, so keys are inserted in ascending order.
func FromMap(in map[string]any) *Map {
	m := New(len(in))
	for _, k := range sortedKeys(in) {
		m.Set(k, fromPlain(in[k]))
	}

	return m
}

func fromPlain(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return FromMap(typed)
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = fromPlain(item)
		}

		return out
	default:
		return v
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Values returns the values in key order.
func (m *Map) Values() []any {
	if m == nil {
		return nil
	}

	out := make([]any, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}

	return out
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. A key that is already present keeps its position.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}

	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Delete removes key, keeping the order of the remaining keys.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}

	if _, ok := m.values[key]; !ok {
		return
	}

	delete(m.values, key)

	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}

		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap converts the Map into a plain Go map, recursing into nested Maps and slices.
// The order of keys is lost.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = toPlain(v)
	}

	return out
}

func toPlain(v any) any {
	switch typed := v.(type) {
	case *Map:
		return typed.ToMap()
	case Plain:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[k] = toPlain(item)
		}

		return out
	case map[string]any:
		return toPlain(Plain(typed))
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = toPlain(item)
		}

		return out
	default:
		return v
	}
}

// Equal reports whether both maps hold the same keys with deeply equal values.
// Key order is ignored.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}

	for k, v := range m.All() {
		ov, ok := other.Get(k)
		if !ok || !Equal(v, ov) {
			return false
		}
	}

	return true
}

func sortedKeys[V any](in map[string]V) []string {
	return slices.Sorted(maps.Keys(in))
}
