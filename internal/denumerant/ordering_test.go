package denumerant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReorderParts(t *testing.T) {
	t.Run("short lists pass through", func(t *testing.T) {
		assert.Equal(t, []int64{10, 5}, ReorderParts([]int64{10, 5}))
		assert.Equal(t, []int64{7}, ReorderParts([]int64{7}))
	})

	t.Run("low-affinity elements come first", func(t *testing.T) {
		// Pairwise shared factors: 6&35 -> 1, 6&10 -> 2, 35&10 -> 5.
		// Affinity scores: 6 -> 2, 35 -> 5, 10 -> 5.
		assert.Equal(t, []int64{6, 10, 35}, ReorderParts([]int64{6, 35, 10}))
	})

	t.Run("ties break by value", func(t *testing.T) {
		// All pairwise gcds are 1: sorted ascending by value.
		assert.Equal(t, []int64{3, 5, 7}, ReorderParts([]int64{7, 3, 5}))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []int64{6, 35, 10}
		ReorderParts(in)
		assert.Equal(t, []int64{6, 35, 10}, in)
	})
}
