package to

import (
	"slices"

	"github.com/tjbenton/to/internal/keypath"
	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

// Conflict is a key where Merge found two values that were neither both mappings,
// both sequences nor deeply equal, and promoted them into one sequence.
type Conflict struct {
	// Path is the dotted key of the conflict, e.g. "foo.bar".
	Path string
	// Target is the value target held before the merge.
	Target any
	// Source is the value the source brought in.
	Source any
}

// Merge combines every source mapping into target in place and returns target.
// Sources are applied left to right and anything that is not a mapping is skipped.
//
// For every key of a source:
//   - a key missing from target is copied over (cloned);
//   - two mappings are merged recursively;
//   - two sequences are concatenated, target elements first;
//   - deeply equal values are left alone;
//   - anything else is a conflict and becomes a sequence holding the target value (or
//     its elements) followed by the source value (or its elements).
//
// Funcs never compare equal, so they always conflict. Merge is not commutative.
// Use ordered.Plain to merge into a map[string]any.
func Merge[M ordered.Mapping](target M, sources ...any) M {
	var m merger
	m.mergeSources(target, sources)

	return target
}

// MergeConflicts merges like Merge and also reports every conflict it promoted.
func MergeConflicts[M ordered.Mapping](target M, sources ...any) (M, []Conflict) {
	m := merger{record: true}
	m.mergeSources(target, sources)

	return target, m.conflicts
}

// Extend copies the top-level entries of every source mapping onto target, last write
// wins, and returns target. Values are not cloned.
func Extend[M ordered.Mapping](target M, sources ...any) M {
	for _, src := range sources {
		sm, ok := kind.AsMapping(src)
		if !ok {
			continue
		}

		for _, k := range sm.Keys() {
			v, _ := sm.Get(k)
			target.Set(k, v)
		}
	}

	return target
}

type merger struct {
	record    bool
	conflicts []Conflict
}

func (m *merger) mergeSources(target ordered.Mapping, sources []any) {
	for _, src := range sources {
		sm, ok := kind.AsMapping(src)
		if !ok {
			continue
		}

		m.merge("", target, sm)
	}
}

func (m *merger) merge(prefix string, target, source ordered.Mapping) {
	for _, key := range source.Keys() {
		sv, _ := source.Get(key)

		tv, exists := target.Get(key)
		if !exists {
			target.Set(key, cloneAny(sv))
			continue
		}

		path := keypath.Join(prefix, key)

		if tm, ok := kind.AsMapping(tv); ok {
			if sm, ok := kind.AsMapping(sv); ok {
				m.merge(path, tm, sm)

				if !isMappingView(tv) {
					target.Set(key, tm)
				}

				continue
			}
		}

		tseq, targetIsSeq := kind.AsSequence(tv)
		sseq, sourceIsSeq := kind.AsSequence(sv)

		if targetIsSeq && sourceIsSeq {
			target.Set(key, slices.Concat(tseq, cloneSequence(sseq)))
			continue
		}

		if ordered.Equal(tv, sv) {
			continue
		}

		if m.record {
			m.conflicts = append(m.conflicts, Conflict{Path: path, Target: tv, Source: sv})
		}

		target.Set(key, slices.Concat(promote(tv), promote(cloneAny(sv))))
	}
}

// isMappingView reports whether kind.AsMapping returns a view of v rather than a copy.
func isMappingView(v any) bool {
	switch v.(type) {
	case map[string]any, ordered.Mapping:
		return true
	default:
		return false
	}
}

// promote turns a conflicting value into the elements it contributes to the merged
// sequence.
func promote(v any) []any {
	if s, ok := kind.AsSequence(v); ok {
		return s
	}

	return []any{v}
}
