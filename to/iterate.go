package to

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/slices"

	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

// Entry is one element of a container as seen by Entries, Filter, Map and Reduce.
type Entry struct {
	// Key is the mapping key; empty for sequence elements.
	Key string
	// Value is the element itself.
	Value any
	// Index is the position of the element in iteration order.
	Index int
	// Keyed is true for mapping entries, false for sequence elements.
	Keyed bool
}

// Entries iterates over a container: (index, value) for sequences and
// (key, value, index) for mappings, in order. Anything else yields nothing.
// The sequence can be ranged over any number of times.
func Entries(v any) iter.Seq[Entry] {
	if m, ok := kind.AsMapping(v); ok {
		return func(yield func(Entry) bool) {
			for i, k := range m.Keys() {
				value, _ := m.Get(k)
				if !yield(Entry{Key: k, Value: value, Index: i, Keyed: true}) {
					return
				}
			}
		}
	}

	if s, ok := kind.AsSequence(v); ok {
		return func(yield func(Entry) bool) {
			for i, item := range s {
				if !yield(Entry{Value: item, Index: i}) {
					return
				}
			}
		}
	}

	return seq.Empty[Entry]()
}

// Filter keeps the elements for which keep returns true. A sequence gives a []any in
// the original order, a mapping gives an *ordered.Map with the kept keys; anything
// else gives nil.
func Filter(v any, keep func(Entry) bool) any {
	switch kind.Of(v) {
	case kind.KindMapping:
		out := ordered.New()
		for e := range Entries(v) {
			if keep(e) {
				out.Set(e.Key, e.Value)
			}
		}

		return out
	case kind.KindSequence:
		kept := slices.Filter(collect(Entries(v)), keep)
		return slices.Map(kept, entryValue)
	default:
		return nil
	}
}

// Map transforms every element. A sequence gives a []any of the results. A mapping
// gives an *ordered.Map: a result that is not a mapping is stored under the entry's
// key. A result that is a mapping replaces the key entirely and its entries are added
// to the output instead, so a transform can rename keys. This holds even when the
// transform returns a mapping-valued entry unchanged: {"a": {"x": 1}} maps to
// {"x": 1}, and the key "a" is gone. Wrap the value to keep it, e.g. return
// map[string]any{e.Key: e.Value}. Anything else gives nil.
func Map(v any, transform func(Entry) any) any {
	switch kind.Of(v) {
	case kind.KindMapping:
		out := ordered.New()
		for e := range Entries(v) {
			result := transform(e)
			if kind.IsMapping(result) {
				Extend(out, result)
				continue
			}

			out.Set(e.Key, result)
		}

		return out
	case kind.KindSequence:
		return slices.Map(collect(Entries(v)), transform)
	default:
		return nil
	}
}

// Reduce folds the elements of a container from left to right, starting with initial.
func Reduce[A any](v any, reducer func(acc A, e Entry) A, initial A) A {
	return seq.Reduce(Entries(v), reducer, initial)
}

func collect(entries iter.Seq[Entry]) []Entry {
	var out []Entry
	for e := range entries {
		out = append(out, e)
	}

	return out
}

func entryValue(e Entry) any {
	return e.Value
}
