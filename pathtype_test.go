package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsWithTypesBasic(t *testing.T) {
	v, err := Parse([]byte(`{"user":{"name":"John","age":30,"active":true,"meta":null}}`), nil)
	require.NoError(t, err)

	out, err := PathsWithTypes(v, 0)
	require.NoError(t, err)

	assert.Equal(t, "string", out.Object().Get("user.name").StrValue())
	assert.Equal(t, "integer", out.Object().Get("user.age").StrValue())
	assert.Equal(t, "boolean", out.Object().Get("user.active").StrValue())
	assert.Equal(t, "null", out.Object().Get("user.meta").StrValue())
}

func TestPathsWithTypesEmitsEmptyContainers(t *testing.T) {
	v, err := Parse([]byte(`{"a":{},"b":[]}`), nil)
	require.NoError(t, err)

	out, err := PathsWithTypes(v, 0)
	require.NoError(t, err)

	assert.Equal(t, "object", out.Object().Get("a").StrValue())
	assert.Equal(t, "array", out.Object().Get("b").StrValue())
}

func TestPathsWithTypesScalarRoot(t *testing.T) {
	out, err := PathsWithTypes(Int(5), 0)
	require.NoError(t, err)
	assert.Equal(t, "integer", out.Object().Get("root").StrValue())
}
