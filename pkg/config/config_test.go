package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xamlint/xamlint/pkg/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, models.LevelNormal, cfg.Level())
	assert.Equal(t, models.KindAuto, cfg.Kind())
	assert.Equal(t, models.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Exclude.Gitignore)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xamlint.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[lint]
level = "strict"

[thresholds]
max_nesting_depth = 6

[output]
format = "json"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, models.LevelStrict, cfg.Level())
	assert.Equal(t, 6, cfg.Thresholds.MaxNestingDepth)
	assert.Equal(t, "json", cfg.Output.Format)
	// Unset keys keep their defaults.
	assert.Equal(t, models.DefaultThresholds().MaxElements, cfg.Thresholds.MaxElements)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xamlint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lint:
  kind: csharp
thresholds:
  max_panel_children: 12
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, models.KindCSharp, cfg.Kind())
	assert.Equal(t, 12, cfg.Thresholds.MaxPanelChildren)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestInvalidLevelFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lint.Level = "pedantic"
	assert.Equal(t, models.LevelNormal, cfg.Level())
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.ShouldExclude(filepath.Join("obj", "Debug", "MainWindow.axaml")))
	assert.True(t, cfg.ShouldExclude(filepath.Join("src", "bin", "out.cs")))
	assert.True(t, cfg.ShouldExclude("MainWindow.g.cs"))
	assert.True(t, cfg.ShouldExclude("App.Designer.cs"))
	assert.False(t, cfg.ShouldExclude(filepath.Join("Views", "MainWindow.axaml")))
}
