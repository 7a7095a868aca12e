package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Parallel()

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestEvery(t *testing.T) {
	t.Parallel()

	positive := func(i int) bool { return i > 0 }

	assert.True(t, Every([]int{1, 2}, positive))
	assert.False(t, Every([]int{1, -2}, positive))
	assert.False(t, Every([]int{}, positive))
	assert.True(t, IsEmpty([]int{}))
}
