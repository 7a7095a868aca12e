package ordered

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrNotObject is returned when a JSON document that must be an object is something else.
	ErrNotObject = errors.New("json value is not an object")
	// ErrTrailingData is returned when a JSON document continues after its value.
	ErrTrailingData = errors.New("unexpected data after json value")
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes the Map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteObjectStart()

	for i, k := range m.Keys() {
		if i > 0 {
			stream.WriteMore()
		}

		v, _ := m.Get(k)
		stream.WriteObjectField(k)
		stream.WriteVal(v)
	}

	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON decodes a JSON object into the Map, keeping the document's key order.
// Existing entries are discarded.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}

	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrNotObject, v)
	}

	*m = *decoded

	return nil
}

// ParseJSON decodes any JSON document. Objects become *Map, arrays []any, integers
// int64 and other numbers float64.
func ParseJSON(data []byte) (any, error) {
	it := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(it)

	v := readJSON(it)

	switch {
	case it.Error == nil:
		// only whitespace may follow the value
		it.WhatIsNext()
		if it.Error == nil {
			return nil, fmt.Errorf("failed to parse json: %w", ErrTrailingData)
		}

		if !errors.Is(it.Error, io.EOF) {
			return nil, fmt.Errorf("failed to parse json: %w", it.Error)
		}

		return v, nil
	case errors.Is(it.Error, io.EOF) && isNumber(v):
		// a top-level number is read until the input runs out
		return v, nil
	default:
		return nil, fmt.Errorf("failed to parse json: %w", it.Error)
	}
}

func readJSON(it *jsoniter.Iterator) any {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
		m := New()
		it.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
			m.Set(field, readJSON(it))
			return it.Error == nil
		})

		return m
	case jsoniter.ArrayValue:
		out := []any{}
		it.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			out = append(out, readJSON(it))
			return it.Error == nil
		})

		return out
	case jsoniter.StringValue:
		return it.ReadString()
	case jsoniter.NumberValue:
		return readNumber(it.ReadNumber())
	case jsoniter.BoolValue:
		return it.ReadBool()
	case jsoniter.NilValue:
		it.ReadNil()
		return nil
	default:
		it.ReportError("readJSON", "unexpected token")
		return nil
	}
}

func readNumber(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}

	if f, err := n.Float64(); err == nil {
		return f
	}

	return n.String()
}
