package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xamlint/xamlint/pkg/config"
	"github.com/xamlint/xamlint/pkg/models"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestDetectKind(t *testing.T) {
	kind, ok := DetectKind("Views/MainWindow.axaml")
	require.True(t, ok)
	assert.Equal(t, models.KindXAML, kind)

	kind, ok = DetectKind("Legacy/Main.XAML")
	require.True(t, ok)
	assert.Equal(t, models.KindXAML, kind)

	kind, ok = DetectKind("ViewModels/MainViewModel.cs")
	require.True(t, ok)
	assert.Equal(t, models.KindCSharp, kind)

	_, ok = DetectKind("project.csproj")
	assert.False(t, ok)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Views", "MainWindow.axaml"))
	writeFile(t, filepath.Join(dir, "Views", "MainWindow.axaml.cs"))
	writeFile(t, filepath.Join(dir, "App.csproj"))
	writeFile(t, filepath.Join(dir, "obj", "Debug", "Generated.axaml"))

	files, err := NewScanner(config.DefaultConfig()).ScanDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		names = append(names, rel)
	}
	assert.Contains(t, names, filepath.Join("Views", "MainWindow.axaml"))
	assert.Contains(t, names, filepath.Join("Views", "MainWindow.axaml.cs"))
	assert.NotContains(t, names, "App.csproj")
	assert.NotContains(t, names, filepath.Join("obj", "Debug", "Generated.axaml"), "obj dir is excluded")
}

func TestScanDirConfigPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "MainWindow.axaml"))
	writeFile(t, filepath.Join(dir, "MainWindow.g.cs"))

	files, err := NewScanner(config.DefaultConfig()).ScanDir(dir)
	require.NoError(t, err)

	for _, f := range files {
		assert.NotContains(t, f, ".g.cs")
	}
	assert.Len(t, files, 1)
}

func TestScanDirGitignore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("ignored/\n"), 0o644))
	writeFile(t, filepath.Join(dir, "kept.axaml"))
	writeFile(t, filepath.Join(dir, "ignored", "skipped.axaml"))

	files, err := NewScanner(config.DefaultConfig()).ScanDir(dir)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Contains(t, files[0], "kept.axaml")
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "MainWindow.axaml")
	writeFile(t, path)

	s := NewScanner(config.DefaultConfig())

	ok, err := s.ScanFile(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ScanFile(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.ScanFile(filepath.Join(dir, "missing.axaml"))
	assert.Error(t, err)
}

func TestGroupByKind(t *testing.T) {
	groups := GroupByKind([]string{"a.axaml", "b.xaml", "c.cs", "d.txt"})

	assert.Len(t, groups[models.KindXAML], 2)
	assert.Len(t, groups[models.KindCSharp], 1)
}

func TestFilterByKind(t *testing.T) {
	files := []string{"a.axaml", "b.cs", "c.xaml", "d.txt"}

	xaml := FilterByKind(files, models.KindXAML)
	assert.Equal(t, []string{"a.axaml", "c.xaml"}, xaml)

	cs := FilterByKind(files, models.KindCSharp)
	assert.Equal(t, []string{"b.cs"}, cs)
}
