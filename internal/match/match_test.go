package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"flatten", "unflatten", 2},
		{"ABC", "abc", 3},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, Similarity("", ""), 0)
	assert.InDelta(t, 1.0, Similarity("merge", "merge"), 0)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0)
	assert.InDelta(t, 0.8, Similarity("merge", "merg"), 1e-9)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loglevel", Normalize("log-level"))
	assert.Equal(t, "loglevel", Normalize("LOG_LEVEL"))
	assert.Equal(t, "keyfield", Normalize("key.field"))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	commands := []string{"merge", "flatten", "unflatten", "sort", "keys"}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{name: "merg", want: "merge", wantOK: true},
		{name: "flaten", want: "flatten", wantOK: true},
		{name: "unflaten", want: "unflatten", wantOK: true},
		{name: "KEYS", want: "keys", wantOK: true},
		{name: "explode", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Closest(tt.name, commands)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	got, ok := Closest("log-levl", []string{"format", "log_level", "log_format"})
	assert.True(t, ok)
	assert.Equal(t, "log_level", got)

	_, ok = Closest("x", nil)
	assert.False(t, ok)
}
