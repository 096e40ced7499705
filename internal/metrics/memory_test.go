package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadMemory(t *testing.T) {
	t.Parallel()

	snap := ReadMemory()
	assert.Greater(t, snap.HeapAlloc, uint64(0), "a running program has a live heap")
	assert.GreaterOrEqual(t, snap.Sys, snap.HeapAlloc)
	assert.Greater(t, snap.HeapObjects, uint64(0))
}
