package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidationLevel(t *testing.T) {
	for input, want := range map[string]ValidationLevel{
		"":         LevelNormal,
		"normal":   LevelNormal,
		"Normal":   LevelNormal,
		"warnings": LevelWarnings,
		"STRICT":   LevelStrict,
		" strict ": LevelStrict,
	} {
		got, err := ParseValidationLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseValidationLevel("pedantic")
	assert.Error(t, err)
}

func TestParseAnalysisKind(t *testing.T) {
	for input, want := range map[string]AnalysisKind{
		"":      KindAuto,
		"auto":  KindAuto,
		"xaml":  KindXAML,
		"axaml": KindXAML,
		"cs":    KindCSharp,
		"C#":    KindCSharp,
	} {
		got, err := ParseAnalysisKind(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	_, err := ParseAnalysisKind("fsharp")
	assert.Error(t, err)
}

func TestDefaultThresholdsPositive(t *testing.T) {
	th := DefaultThresholds()
	assert.Positive(t, th.MaxNestingDepth)
	assert.Positive(t, th.MaxInlineStyled)
	assert.Positive(t, th.MaxElements)
	assert.Positive(t, th.MaxResourceEntries)
	assert.Positive(t, th.MaxPanelChildren)
}
