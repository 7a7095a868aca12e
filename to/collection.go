package to

import (
	"cmp"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq2"
	"github.com/samber/lo"

	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

// Keys returns the keys of a mapping in order, or the indices of a sequence as strings.
func Keys(v any) []string {
	if m, ok := kind.AsMapping(v); ok {
		return m.Keys()
	}

	if s, ok := kind.AsSequence(v); ok {
		keys := make([]string, len(s))
		for i := range s {
			keys[i] = strconv.Itoa(i)
		}

		return keys
	}

	return nil
}

// Values returns the values of a mapping in key order. Selectors narrow the keys:
// "name" keeps only the named keys, "!name" drops a key. A sequence is returned as is.
func Values(v any, selectors ...string) []any {
	if s, ok := kind.AsSequence(v); ok {
		return s
	}

	m, ok := kind.AsMapping(v)
	if !ok {
		return nil
	}

	var include, exclude []string

	for _, s := range selectors {
		if name, ok := strings.CutPrefix(s, "!"); ok {
			exclude = append(exclude, name)
		} else {
			include = append(include, s)
		}
	}

	keys := m.Keys()
	if len(include) > 0 {
		keys = lo.Filter(keys, func(k string, _ int) bool {
			return lo.Contains(include, k)
		})
	}

	keys = lo.Without(keys, exclude...)

	out := make([]any, 0, len(keys))
	for _, k := range keys {
		value, _ := m.Get(k)
		out = append(out, value)
	}

	return out
}

// ObjectEntries yields, for every mapping-valued entry of v, a new mapping holding the
// entry's key under keyField (default "key") followed by the entries of the value.
//
//	{"test": {"one": 1}} yields {"key": "test", "one": 1}
func ObjectEntries(v any, keyField ...string) iter.Seq[*ordered.Map] {
	field := "key"
	if len(keyField) > 0 && keyField[0] != "" {
		field = keyField[0]
	}

	return func(yield func(*ordered.Map) bool) {
		for e := range Entries(v) {
			inner, ok := kind.AsMapping(e.Value)
			if !e.Keyed || !ok {
				continue
			}

			out := ordered.New(inner.Len() + 1)
			out.Set(field, e.Key)

			if !yield(Extend(out, inner)) {
				return
			}
		}
	}
}

// Array coerces v into a sequence: sequences give their elements, strings their
// lines, nil an empty sequence and anything else a one element sequence.
func Array(v any) []any {
	if s, ok := kind.AsSequence(v); ok {
		return s
	}

	switch typed := v.(type) {
	case nil:
		return []any{}
	case string:
		return lo.Map(strings.Split(typed, "\n"), func(line string, _ int) any {
			return line
		})
	default:
		return []any{v}
	}
}

// Unique returns s without repeated elements, keeping first occurrences.
func Unique[S ~[]T, T comparable](s S) S {
	return lo.Uniq(s)
}

// UniqueValues is Unique for values that may not be comparable, such as nested
// mappings. Elements are compared with deep equality.
func UniqueValues(s []any) []any {
	out := make([]any, 0, len(s))

	for _, v := range s {
		seen := lo.ContainsBy(out, func(item any) bool {
			return ordered.Equal(item, v)
		})
		if !seen {
			out = append(out, v)
		}
	}

	return out
}

// Sort returns a sorted copy of v. A mapping gives an *ordered.Map with its keys in
// ascending order. A sequence is sorted numbers first, then strings, then everything
// else by its string form. Other values are returned unchanged.
func Sort(v any) any {
	if m, ok := kind.AsMapping(v); ok {
		out := ordered.New(m.Len())
		for k, value := range seq2.SortByKeys(all(m)) {
			out.Set(k, value)
		}

		return out
	}

	if s, ok := kind.AsSequence(v); ok {
		out := slices.Clone(s)
		slices.SortStableFunc(out, compareValues)

		return out
	}

	return v
}

func all(m ordered.Mapping) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.Keys() {
			v, _ := m.Get(k)
			if !yield(k, v) {
				return
			}
		}
	}
}

func sortRank(k kind.KindEnum) int {
	switch k {
	case kind.KindNumber:
		return 0
	case kind.KindString:
		return 1
	default:
		return 2
	}
}

func compareValues(a, b any) int {
	ka, kb := kind.Of(a), kind.Of(b)
	if c := cmp.Compare(sortRank(ka), sortRank(kb)); c != 0 {
		return c
	}

	switch {
	case ka == kind.KindNumber && kb == kind.KindNumber:
		return cmp.Compare(Number(a), Number(b))
	default:
		return strings.Compare(String(a), String(b))
	}
}
