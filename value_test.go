package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructorsAndKind(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, Bool(true).IsBool())
	assert.True(t, Int(42).IsInteger())
	assert.True(t, Float(3.14).IsNumber())
	assert.True(t, Str("x").IsString())
	assert.True(t, Arr().IsArray())
	assert.True(t, Obj().IsObject())
}

func TestValueIsContainer(t *testing.T) {
	assert.True(t, Arr().IsContainer())
	assert.True(t, Obj().IsContainer())
	assert.False(t, Str("x").IsContainer())
	assert.False(t, Null().IsContainer())
}

func TestValueCloneDeepCopies(t *testing.T) {
	inner := Obj()
	inner.Object().Insert("a", Int(1))
	outer := Arr(inner)

	cloned := outer.Clone()
	cloned.Array()[0].Object().Set("a", Int(999))

	require.True(t, outer.Array()[0].Object().Get("a").Equal(Int(1)), "original must not be mutated by changes to the clone")
	assert.True(t, cloned.Array()[0].Object().Get("a").Equal(Int(999)))
}

func TestValueEqual(t *testing.T) {
	a := Obj()
	a.Object().Insert("x", Int(1))
	a.Object().Insert("y", Str("hi"))

	b := Obj()
	b.Object().Insert("x", Int(1))
	b.Object().Insert("y", Str("hi"))

	assert.True(t, a.Equal(b))

	c := Obj()
	c.Object().Insert("y", Str("hi"))
	c.Object().Insert("x", Int(1))
	assert.False(t, a.Equal(c), "key order participates in object equality")
}

func TestValuePush(t *testing.T) {
	v := Arr()
	v.Push(Int(1))
	v.Push(Int(2))
	require.Equal(t, 2, v.Len())
	assert.Equal(t, int64(2), v.Array()[1].IntValue())
}
