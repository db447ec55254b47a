package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenBasicObject(t *testing.T) {
	v, err := Parse([]byte(`{"user":{"name":"John","details":{"age":30,"city":"NYC"}}}`), nil)
	require.NoError(t, err)

	out, err := Flatten(v, 0)
	require.NoError(t, err)

	assert.Equal(t, "John", out.Object().Get("user.name").StrValue())
	assert.Equal(t, int64(30), out.Object().Get("user.details.age").IntValue())
	assert.Equal(t, "NYC", out.Object().Get("user.details.city").StrValue())
	assert.Equal(t, 3, out.Len())
}

func TestFlattenWithArray(t *testing.T) {
	v, err := Parse([]byte(`{"tags":["a","b"],"pos":[40.7,-74.0]}`), nil)
	require.NoError(t, err)

	out, err := Flatten(v, 0)
	require.NoError(t, err)

	assert.Equal(t, "a", out.Object().Get("tags[0]").StrValue())
	assert.Equal(t, "b", out.Object().Get("tags[1]").StrValue())
	assert.Equal(t, 40.7, out.Object().Get("pos[0]").FloatValue())
	assert.Equal(t, -74.0, out.Object().Get("pos[1]").FloatValue())
}

func TestFlattenTopLevelScalarArrayCopiedUnchanged(t *testing.T) {
	v, err := Parse([]byte(`["a","b","c"]`), nil)
	require.NoError(t, err)

	out, err := Flatten(v, 0)
	require.NoError(t, err)
	assert.True(t, out.Equal(v))
}

func TestFlattenTopLevelArrayWithContainerFlattensPerElement(t *testing.T) {
	v, err := Parse([]byte(`[{"a":1},{"a":2,"b":{"c":3}}]`), nil)
	require.NoError(t, err)

	out, err := Flatten(v, 0)
	require.NoError(t, err)
	require.True(t, out.IsArray())
	assert.Equal(t, int64(1), out.Array()[0].Object().Get("a").IntValue())
	assert.Equal(t, int64(3), out.Array()[1].Object().Get("b.c").IntValue())
}

func TestFlattenScalarIsIdentity(t *testing.T) {
	v := Str("hello")
	out, err := Flatten(v, 0)
	require.NoError(t, err)
	assert.True(t, out.Equal(v))
}

func TestFlattenElidesEmptyContainers(t *testing.T) {
	v, err := Parse([]byte(`{"a":{},"b":[],"c":1}`), nil)
	require.NoError(t, err)

	out, err := Flatten(v, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Len())
	assert.Equal(t, int64(1), out.Object().Get("c").IntValue())
}

func TestFlattenIsIdempotent(t *testing.T) {
	v, err := Parse([]byte(`{"user":{"name":"John","tags":["a","b"]}}`), nil)
	require.NoError(t, err)

	once, err := Flatten(v, 0)
	require.NoError(t, err)
	twice, err := Flatten(once, 0)
	require.NoError(t, err)

	assert.True(t, once.Equal(twice))
}

func TestFlattenPathOverflow(t *testing.T) {
	v, err := Parse([]byte(`{"aVeryLongKeyNameIndeed":{"anotherLongOne":1}}`), nil)
	require.NoError(t, err)

	_, err = Flatten(v, 10)
	require.Error(t, err)
	var overflow *PathOverflowError
	assert.ErrorAs(t, err, &overflow)
}
