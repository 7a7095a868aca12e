package ordered

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := New()
	m.Set("c", 1)
	m.Set("b", 2)
	m.Set("a", 3)
	m.Set("c", 4)

	assert.Equal(t, []string{"c", "b", "a"}, m.Keys())
	assert.Equal(t, []any{4, 2, 3}, m.Values())
	assert.Equal(t, 3, m.Len())

	m.Delete("b")
	assert.Equal(t, []string{"c", "a"}, m.Keys())
	assert.False(t, m.Has("b"))

	m.Delete("missing")
	assert.Equal(t, 2, m.Len())
}

func TestMapZeroValue(t *testing.T) {
	t.Parallel()

	var m Map
	assert.Equal(t, 0, m.Len())

	m.Set("one", 1)
	v, ok := m.Get("one")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	var nilMap *Map
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Keys())

	for range nilMap.All() {
		t.Fatal("nil map must not yield")
	}
}

func TestFromMapSortsKeysAndRecurses(t *testing.T) {
	t.Parallel()

	m := FromMap(map[string]any{
		"b": map[string]any{"y": 1, "x": 2},
		"a": []any{map[string]any{"k": "v"}},
	})

	assert.Equal(t, []string{"a", "b"}, m.Keys())

	b, _ := m.Get("b")
	require.IsType(t, &Map{}, b)
	assert.Equal(t, []string{"x", "y"}, b.(*Map).Keys())

	a, _ := m.Get("a")
	require.IsType(t, []any{}, a)
	assert.IsType(t, &Map{}, a.([]any)[0])

	assert.Equal(t, map[string]any{
		"b": map[string]any{"y": 1, "x": 2},
		"a": []any{map[string]any{"k": "v"}},
	}, m.ToMap())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := FromPairs(Pair{"one", 1}, Pair{"two", FromPairs(Pair{"x", []any{1, 2}})})
	b := FromPairs(Pair{"two", FromPairs(Pair{"x", []any{1, 2}})}, Pair{"one", 1})

	assert.True(t, a.Equal(b), "key order must not matter")
	assert.True(t, Equal(a, b))

	b.Set("one", 2)
	assert.False(t, Equal(a, b))

	fn := func() {}
	assert.False(t, Equal(fn, fn), "funcs never compare equal")
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal("1", 1))

	assert.NotPanics(t, func() {
		Equal(regexp.MustCompile("a"), regexp.MustCompile("a"))
	})
}

func TestEqualComparesNumbersByValue(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(int64(8080), 8080))
	assert.True(t, Equal(uint8(1), int64(1)))
	assert.True(t, Equal(2.0, int64(2)))
	assert.False(t, Equal(2.5, int64(2)))
	assert.False(t, Equal(int64(1), "1"))

	a := FromPairs(Pair{"port", int64(8080)}, Pair{"ids", []any{int64(1), 2.5}})
	b := map[string]any{"port": 8080, "ids": []any{1, float32(2.5)}}
	assert.True(t, Equal(a, FromMap(b)))
}

func TestPlain(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"b": 1, "a": 2}
	p := Plain(raw)

	assert.Equal(t, []string{"a", "b"}, p.Keys())

	p.Set("c", 3)
	assert.Equal(t, 3, raw["c"], "writes go to the wrapped map")

	p.Delete("a")
	_, ok := raw["a"]
	assert.False(t, ok)
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"z":1,"a":{"y":[1,2.5,"x",true,null],"b":{}},"m":"s"}`

	var m Map
	require.NoError(t, json.Unmarshal([]byte(input), &m))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	z, _ := m.Get("z")
	assert.Equal(t, int64(1), z)

	a, _ := m.Get("a")
	y, _ := a.(*Map).Get("y")
	assert.Equal(t, []any{int64(1), 2.5, "x", true, nil}, y)

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assert.Equal(t, input, string(out))
}

func TestUnmarshalJSONRejectsNonObject(t *testing.T) {
	t.Parallel()

	var m Map
	err := json.Unmarshal([]byte(`[1,2]`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = ParseJSON([]byte(`{"a":`))
	assert.Error(t, err)
}

func TestParseJSONTrailingData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		err   bool
	}{
		{input: `{"a":1} trailing garbage`, err: true},
		{input: `[1, 2] ]`, err: true},
		{input: `"x" "y"`, err: true},
		{input: `42 x`, err: true},
		{input: "{\"a\":1}\n  ", err: false},
		{input: `42`, err: false},
		{input: `42 `, err: false},
		{input: `null`, err: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseJSON([]byte(tt.input))
			if tt.err {
				assert.ErrorIs(t, err, ErrTrailingData)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	input := `
zeta: 1
alpha:
  beta: two
  list:
    - 1
    - x
base: &base
  shared: yes
derived:
  <<: *base
  own: 2
`

	var m Map
	require.NoError(t, yaml.Unmarshal([]byte(input), &m))

	assert.Equal(t, []string{"zeta", "alpha", "base", "derived"}, m.Keys())

	zeta, _ := m.Get("zeta")
	assert.Equal(t, int64(1), zeta)

	derived, _ := m.Get("derived")
	require.IsType(t, &Map{}, derived)
	assert.Equal(t, []string{"shared", "own"}, derived.(*Map).Keys())

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)

	var again Map
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, m.Keys(), again.Keys())
	assert.True(t, m.Equal(&again))
}

func TestUnmarshalYAMLRejectsNonMapping(t *testing.T) {
	t.Parallel()

	var m Map
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotMapping)
}
