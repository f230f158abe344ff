// Package config loads xamlint configuration from standard file locations,
// falling back to built-in defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/xamlint/xamlint/pkg/models"
)

// Config holds all configuration options for xamlint.
type Config struct {
	// Lint settings
	Lint LintConfig `koanf:"lint" toml:"lint"`

	// Thresholds for the performance rules
	Thresholds models.Thresholds `koanf:"thresholds" toml:"thresholds"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude" toml:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// LintConfig controls the default run behavior.
type LintConfig struct {
	Level string `koanf:"level" toml:"level"` // normal, warnings, strict
	Kind  string `koanf:"kind" toml:"kind"`   // auto, xaml, csharp
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns" toml:"patterns"`
	Dirs      []string `koanf:"dirs" toml:"dirs"`
	Gitignore bool     `koanf:"gitignore" toml:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color  bool   `koanf:"color" toml:"color"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Lint: LintConfig{
			Level: string(models.LevelNormal),
			Kind:  string(models.KindAuto),
		},
		Thresholds: models.DefaultThresholds(),
		Exclude: ExcludeConfig{
			Patterns: []string{
				"*.g.axaml",
				"*.Designer.cs",
				"*.g.cs",
				"*.g.i.cs",
			},
			Dirs: []string{
				"bin",
				"obj",
				".git",
				"node_modules",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file, layering it over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults when no file exists or a file fails to parse.
func LoadOrDefault() *Config {
	configNames := []string{
		"xamlint.toml",
		"xamlint.yaml",
		"xamlint.yml",
		"xamlint.json",
		".xamlint.toml",
		".xamlint.yaml",
		".xamlint.yml",
		".xamlint.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			cfg, err := Load(name)
			if err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}

// Level parses the configured validation level, falling back to normal.
func (c *Config) Level() models.ValidationLevel {
	level, err := models.ParseValidationLevel(c.Lint.Level)
	if err != nil {
		return models.LevelNormal
	}
	return level
}

// Kind parses the configured analysis kind, falling back to auto.
func (c *Config) Kind() models.AnalysisKind {
	kind, err := models.ParseAnalysisKind(c.Lint.Kind)
	if err != nil {
		return models.KindAuto
	}
	return kind
}

// ShouldExclude checks if a path should be skipped during discovery.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
