package to

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	commonto "github.com/go-softwarelab/common/pkg/to"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/utils"
)

// ErrUnknownRegexFlag is returned by Regex for a flag it cannot translate.
var ErrUnknownRegexFlag = errors.New("unknown regex flag")

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Type returns the short type name of v: "string", "number", "boolean", "array",
// "object", "buffer", "function", "regex", "date", "null" or "unknown".
func Type(v any) string {
	return kind.Of(v).Name()
}

// Number coerces v into a number. Sequences and mappings give their length, bools 0 or
// 1, times their Unix milliseconds and strings their parsed value. Anything that cannot
// be converted gives 0.
func Number(v any) float64 {
	switch kind.Of(v) {
	case kind.KindNull:
		return 0
	case kind.KindSequence:
		s, _ := kind.AsSequence(v)
		return float64(len(s))
	case kind.KindMapping:
		m, _ := kind.AsMapping(v)
		return float64(m.Len())
	case kind.KindTime:
		return float64(v.(time.Time).UnixMilli())
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}

	return f
}

// String converts v into a string. Strings are returned as they are, bytes are decoded,
// sequences and mappings are encoded as JSON and everything else goes through its
// String or MarshalText method, falling back to fmt formatting.
func String(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	}

	if kind.Of(v).IsContainer() {
		data, err := jsonAPI.Marshal(v)
		if err == nil {
			return string(data)
		}
	}

	return commonto.String(v)
}

// Clamp limits value to [min, max]. Without max the value is only bounded below.
// Swapped bounds are put back in order.
func Clamp[T utils.Number](value, min T, max ...T) T {
	if len(max) == 0 {
		return lo.Max([]T{value, min})
	}

	low, high := min, max[0]
	if high < low {
		low, high = high, low
	}

	return lo.Clamp(value, low, high)
}

// Regex compiles pattern with JavaScript style flags. "i", "m" and "s" become inline
// flags, "g", "u" and "y" have no Go equivalent and are ignored.
func Regex(pattern string, flags ...string) (*regexp.Regexp, error) {
	var inline []rune

	for _, f := range strings.Join(flags, "") {
		switch f {
		case 'i', 'm', 's':
			if !lo.Contains(inline, f) {
				inline = append(inline, f)
			}
		case 'g', 'u', 'y':
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownRegexFlag, f)
		}
	}

	if len(inline) > 0 {
		pattern = "(?" + string(inline) + ")" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex %q: %w", pattern, err)
	}

	return re, nil
}
