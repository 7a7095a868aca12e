package to

import (
	"reflect"

	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
)

// Clone returns a deep copy of value: mappings and sequences are rebuilt recursively,
// so mutating the copy never reaches the original. The dynamic type is kept
// (*ordered.Map stays *ordered.Map, []string stays []string). Scalars are returned as
// they are; pointers, funcs and channels are shared.
func Clone[T any](value T) T {
	c, ok := cloneAny(value).(T)
	if !ok {
		return value
	}

	return c
}

func cloneAny(v any) any {
	switch typed := v.(type) {
	case nil:
		return nil
	case *ordered.Map:
		if typed == nil {
			return typed
		}

		out := ordered.New(typed.Len())
		for k, item := range typed.All() {
			out.Set(k, cloneAny(item))
		}

		return out
	case ordered.Plain:
		if typed == nil {
			return typed
		}

		return ordered.Plain(clonePlain(typed))
	case map[string]any:
		if typed == nil {
			return typed
		}

		return clonePlain(typed)
	case []any:
		return cloneSequence(typed)
	}

	switch kind.Of(v) {
	case kind.KindSequence, kind.KindMapping, kind.KindBytes:
		return cloneReflect(reflect.ValueOf(v)).Interface()
	default:
		return v
	}
}

func clonePlain(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, item := range in {
		out[k] = cloneAny(item)
	}

	return out
}

func cloneSequence(in []any) []any {
	if in == nil {
		return nil
	}

	out := make([]any, len(in))
	for i, item := range in {
		out[i] = cloneAny(item)
	}

	return out
}

func cloneReflect(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	default:
		return rv
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}

		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := range rv.Len() {
			out.Index(i).Set(cloneElem(rv.Index(i)))
		}

		return out
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value()))
		}

		return out
	}
}

// cloneElem clones a slice element or map value so that it can be stored back into a
// container of the same element type.
func cloneElem(ev reflect.Value) reflect.Value {
	if !ev.CanInterface() {
		return ev
	}

	c := cloneAny(ev.Interface())
	if c == nil {
		return reflect.Zero(ev.Type())
	}

	return reflect.ValueOf(c)
}
