package ordered

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cast"
)

// Mapping is the capability shared by every keyed container the library accepts.
// Keys reports the iteration order.
type Mapping interface {
	Len() int
	Keys() []string
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
}

var (
	_ Mapping = (*Map)(nil)
	_ Mapping = Plain(nil)
)

// Plain views a Go map as a Mapping. Writes go straight to the underlying map and
// keys are reported in ascending order.
type Plain map[string]any

// Len returns the number of entries.
func (p Plain) Len() int { return len(p) }

// Keys returns the keys in ascending order.
func (p Plain) Keys() []string { return sortedKeys(p) }

// Get returns the value stored under key.
func (p Plain) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// Set stores value under key. It panics on a nil Plain, like a nil map would.
func (p Plain) Set(key string, value any) { p[key] = value }

// Delete removes key.
func (p Plain) Delete(key string) { delete(p, key) }

// equalOptions lets cmp look into values with unexported fields such as *regexp.Regexp
// instead of panicking on them, and compares numbers by value whatever their Go type.
var equalOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.FilterValues(bothNumbers, cmp.Comparer(numbersEqual)),
}

// Equal reports whether a and b are deeply equal. Numbers are equal by value, so
// int64(1), int(1) and 1.0 are all equal. Funcs are equal only when both are nil,
// *Map values compare without regard to key order.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOptions...)
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func bothNumbers(a, b any) bool {
	return isNumber(a) && isNumber(b)
}

func numbersEqual(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch {
	case ra.CanInt() && rb.CanInt():
		return ra.Int() == rb.Int()
	case ra.CanUint() && rb.CanUint():
		return ra.Uint() == rb.Uint()
	}

	fa, errA := cast.ToFloat64E(a)
	fb, errB := cast.ToFloat64E(b)

	return errA == nil && errB == nil && fa == fb
}
