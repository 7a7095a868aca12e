// Package kind classifies runtime values by the shape the transforms care about.
package kind

import (
	"reflect"
	"regexp"
	"time"

	"github.com/go-softwarelab/common/pkg/is"

	"github.com/tjbenton/to/ordered"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindNumber
	KindString
	KindBytes
	KindTime
	KindRegex
	KindSequence
	KindMapping
	KindFunc
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// Name returns the short lowercase type name used by to.Type.
func (k KindEnum) Name() string {
	switch k {
	default:
		return "unknown"
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBytes:
		return "buffer"
	case KindTime:
		return "date"
	case KindRegex:
		return "regex"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	case KindFunc:
		return "function"
	}
}

func (k KindEnum) IsContainer() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping:
		return true
	}
}

// Of classifies a value. Nil pointers and nil maps are KindNull, a nil slice is
// still an (empty) KindSequence.
func Of(v any) KindEnum {
	switch typed := v.(type) {
	case nil:
		return KindNull
	case []any:
		return KindSequence
	case *ordered.Map:
		if typed == nil {
			return KindNull
		}

		return KindMapping
	case ordered.Plain:
		if typed == nil {
			return KindNull
		}

		return KindMapping
	case map[string]any:
		if typed == nil {
			return KindNull
		}

		return KindMapping
	case string:
		return KindString
	case bool:
		return KindBool
	case []byte:
		return KindBytes
	}

	rtype := reflect.TypeOf(v)
	if rtype.Kind() != reflect.Slice && is.Nil(v) {
		return KindNull
	}

	if _, ok := v.(ordered.Mapping); ok {
		return KindMapping
	}

	return FromReflectType(rtype)
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindNull
	}

	// check well known types first
	switch rtype {
	case reflect.TypeFor[time.Time]():
		return KindTime
	case reflect.TypeFor[*regexp.Regexp]():
		return KindRegex
	case reflect.TypeFor[[]byte]():
		return KindBytes
	}

	switch rtype.Kind() {
	default:
		return KindOther
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rtype.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}

		return KindSequence
	case reflect.Array:
		return KindSequence
	case reflect.Map:
		if rtype.Key().Kind() == reflect.String {
			return KindMapping
		}

		return KindOther
	case reflect.Func:
		return KindFunc
	}
}
