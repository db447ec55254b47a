package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesKeyOrderAndIntegerDistinction(t *testing.T) {
	v, err := Parse([]byte(`{"b":1,"a":2.5,"c":"x"}`), nil)
	require.NoError(t, err)
	require.True(t, v.IsObject())

	assert.Equal(t, []string{"b", "a", "c"}, v.Object().Keys())
	assert.True(t, v.Object().Get("b").IsInteger())
	assert.True(t, v.Object().Get("a").IsNumber())
}

func TestParseNestedArraysAndObjects(t *testing.T) {
	v, err := Parse([]byte(`{"tags":["a","b"],"nested":{"x":null,"y":true}}`), nil)
	require.NoError(t, err)

	tags := v.Object().Get("tags")
	require.True(t, tags.IsArray())
	require.Equal(t, 2, tags.Len())
	assert.Equal(t, "a", tags.Array()[0].StrValue())

	nested := v.Object().Get("nested")
	assert.True(t, nested.Object().Get("x").IsNull())
	assert.True(t, nested.Object().Get("y").BoolValue())
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	_, err := Parse([]byte(`{"a":1,"a":2}`), nil)
	assert.Error(t, err)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`), nil)
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestPrintCompact(t *testing.T) {
	v, err := Parse([]byte(`{"a":1,"b":[1,2],"c":"x"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[1,2],"c":"x"}`, Print(v, false))
}

func TestPrintPrettyIndentsTwoSpaces(t *testing.T) {
	v, err := Parse([]byte(`{"a":1}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", Print(v, true))
}

func TestPrintRoundTripPreservesOrderAndTypes(t *testing.T) {
	input := `{"z":1,"y":2.5,"x":"s","w":[1,"a",null],"v":{}}`
	v, err := Parse([]byte(input), nil)
	require.NoError(t, err)
	assert.Equal(t, input, Print(v, false))
}
