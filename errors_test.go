package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipelineErrorFormatsTemplate(t *testing.T) {
	err := NewPipelineError("path_overflow", "path {path} exceeded {limit} bytes", ErrPathOverflow,
		map[string]any{"path": "a.b.c", "limit": 10})
	assert.Equal(t, "path a.b.c exceeded 10 bytes", err.Error())
	assert.ErrorIs(t, err, ErrPathOverflow)
}

func TestPathOverflowErrorMessage(t *testing.T) {
	err := &PathOverflowError{Path: "a.b.c", Limit: 8}
	assert.Contains(t, err.Error(), "8 bytes")
	assert.ErrorIs(t, err, ErrPathOverflow)
}

func TestInvalidPatternErrorMessage(t *testing.T) {
	err := &InvalidPatternError{Pattern: "(unclosed", Reason: "missing closing paren"}
	assert.Contains(t, err.Error(), "(unclosed")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "abc", truncatePath("abc", 10))
	assert.Equal(t, "ab...", truncatePath("abcdef", 2))
}
