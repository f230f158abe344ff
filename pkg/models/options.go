package models

import (
	"fmt"
	"strings"
)

// ValidationLevel controls whether warning findings escalate the verdict.
type ValidationLevel string

const (
	LevelNormal   ValidationLevel = "normal"
	LevelWarnings ValidationLevel = "warnings"
	LevelStrict   ValidationLevel = "strict"
)

// ParseValidationLevel converts a string to a ValidationLevel. The empty
// string defaults to normal; anything unrecognized is a configuration error.
func ParseValidationLevel(s string) (ValidationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return LevelNormal, nil
	case "warnings":
		return LevelWarnings, nil
	case "strict":
		return LevelStrict, nil
	default:
		return "", fmt.Errorf("unknown validation level %q (expected normal, warnings, or strict)", s)
	}
}

// AnalysisKind selects the input format for performance analysis.
type AnalysisKind string

const (
	KindAuto   AnalysisKind = "auto"
	KindXAML   AnalysisKind = "xaml"
	KindCSharp AnalysisKind = "csharp"
)

// ParseAnalysisKind converts a string to an AnalysisKind. The empty string
// defaults to auto-detection.
func ParseAnalysisKind(s string) (AnalysisKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "autodetect", "auto-detect":
		return KindAuto, nil
	case "xaml", "axaml":
		return KindXAML, nil
	case "csharp", "cs", "c#":
		return KindCSharp, nil
	default:
		return "", fmt.Errorf("unknown analysis kind %q (expected auto, xaml, or csharp)", s)
	}
}

// Thresholds configures the numeric limits used by performance rules.
type Thresholds struct {
	MaxNestingDepth    int `json:"max_nesting_depth" koanf:"max_nesting_depth" toml:"max_nesting_depth"`
	MaxInlineStyled    int `json:"max_inline_styled" koanf:"max_inline_styled" toml:"max_inline_styled"`
	MaxElements        int `json:"max_elements" koanf:"max_elements" toml:"max_elements"`
	MaxResourceEntries int `json:"max_resource_entries" koanf:"max_resource_entries" toml:"max_resource_entries"`
	MaxPanelChildren   int `json:"max_panel_children" koanf:"max_panel_children" toml:"max_panel_children"`
}

// DefaultThresholds returns sensible default limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxNestingDepth:    10,
		MaxInlineStyled:    5,
		MaxElements:        300,
		MaxResourceEntries: 40,
		MaxPanelChildren:   30,
	}
}

// Options carries the configuration for a single run. It is immutable for
// the duration of the run and shared read-only by every rule.
type Options struct {
	Level      ValidationLevel `json:"validation_level"`
	Kind       AnalysisKind    `json:"analysis_kind"`
	Thresholds Thresholds      `json:"thresholds"`
}

// DefaultOptions returns options with normal level, auto kind, and default
// thresholds.
func DefaultOptions() Options {
	return Options{
		Level:      LevelNormal,
		Kind:       KindAuto,
		Thresholds: DefaultThresholds(),
	}
}
