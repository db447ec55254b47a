package jsonflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineErrorLocalizeFallsBackWithNilLocalizer(t *testing.T) {
	err := NewPipelineError("path_overflow", "path {path} overflowed", ErrPathOverflow, map[string]any{"path": "a.b"})
	assert.Equal(t, err.Error(), err.Localize(nil))
}

func TestLocalizerRendersZhHansTranslation(t *testing.T) {
	loc, err := Localizer("zh-Hans")
	require.NoError(t, err)

	err2 := NewPipelineError("path_overflow", "fallback", ErrPathOverflow, map[string]any{"limit": 10, "path": "a.b"})
	got := err2.Localize(loc)
	assert.NotEqual(t, "fallback", got)
}
