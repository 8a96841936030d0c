package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/paper/pkg/errors"
	"github.com/go-drift/paper/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module github.com/acme/shop/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/shop/v2", cfg.ModulePath)
	assert.Equal(t, "shop", cfg.Name)
	assert.Empty(t, cfg.ThemeFile)
	assert.Nil(t, cfg.Override.Schema)
	assert.Nil(t, cfg.Override.Dark)
}

func TestResolveReadsPaperYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/app\n")
	writeFile(t, filepath.Join(dir, FileName), "theme:\n  name: Brand\n  file: design/theme.yaml\n  schema: v2\n  dark: true\n")

	cfg, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Brand", cfg.Name)
	assert.Equal(t, filepath.Join(dir, "design", "theme.yaml"), cfg.ThemeFile)
	require.NotNil(t, cfg.Override.Schema)
	assert.Equal(t, theme.SchemaLegacy, *cfg.Override.Schema)
	require.NotNil(t, cfg.Override.Dark)
	assert.True(t, *cfg.Override.Dark)
}

func TestResolveRejectsBadSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/app\n")
	writeFile(t, filepath.Join(dir, FileName), "theme:\n  schema: banana\n")

	_, err := Resolve(dir)
	var pe *errors.PaperError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, errors.KindConfig, pe.Kind)
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, FileName), "theme: [\n")

	_, err := LoadOptional(dir)
	var pe *errors.PaperError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, errors.KindParsing, pe.Kind)
}

func TestResolveWithoutGoMod(t *testing.T) {
	_, err := Resolve(t.TempDir())
	require.Error(t, err)
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go.mod"), "module example.com/app\n")
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	root, err := FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		modulePath string
		want       string
	}{
		{"github.com/acme/shop", "shop"},
		{"github.com/acme/shop/v3", "shop"},
		{"app", "app"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultName(tt.modulePath, "/tmp/x"), tt.modulePath)
	}
}
