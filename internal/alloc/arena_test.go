package alloc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocStringWithinCapacity(t *testing.T) {
	a := NewArena(64)
	s := a.AllocString("user.name")
	assert.Equal(t, "user.name", s)
	assert.Equal(t, len("user.name"), a.Len())
}

func TestArenaAllocStringOverflowFallsBackToHeap(t *testing.T) {
	a := NewArena(4)
	long := strings.Repeat("x", 100)
	s := a.AllocString(long)
	assert.Equal(t, long, s)
}

func TestArenaResetReleasesAll(t *testing.T) {
	a := NewArena(64)
	a.AllocString("a.b.c")
	require.NotZero(t, a.Len())
	a.Reset()
	assert.Equal(t, 0, a.Len())
}
