package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectInsertionOrderPreserved(t *testing.T) {
	o := NewObject()
	o.Insert("c", Int(3))
	o.Insert("a", Int(1))
	o.Insert("b", Int(2))

	assert.Equal(t, []string{"c", "a", "b"}, o.Keys())
}

func TestObjectSetOverwritesInPlace(t *testing.T) {
	o := NewObject()
	o.Insert("a", Int(1))
	o.Insert("b", Int(2))
	o.Set("a", Int(100))

	assert.Equal(t, []string{"a", "b"}, o.Keys(), "overwrite must not move the key")
	assert.Equal(t, int64(100), o.Get("a").IntValue())
}

func TestObjectInsertPanicsOnDuplicate(t *testing.T) {
	o := NewObject()
	o.Insert("a", Int(1))
	assert.Panics(t, func() {
		o.Insert("a", Int(2))
	})
}

func TestObjectDeletePreservesRemainingOrder(t *testing.T) {
	o := NewObject()
	o.Insert("a", Int(1))
	o.Insert("b", Int(2))
	o.Insert("c", Int(3))

	o.Delete("b")

	require.Equal(t, []string{"a", "c"}, o.Keys())
	assert.False(t, o.Has("b"))
	assert.Equal(t, int64(3), o.Get("c").IntValue())
}

func TestObjectCloneIsIndependent(t *testing.T) {
	o := NewObject()
	o.Insert("a", Int(1))

	clone := o.Clone()
	clone.Set("a", Int(2))

	assert.Equal(t, int64(1), o.Get("a").IntValue())
	assert.Equal(t, int64(2), clone.Get("a").IntValue())
}
