package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "MontanaCounties.csv", cfg.CountiesFile)
	assert.Equal(t, filepath.Join(".bigsky", "cities.txt"), cfg.CitiesFile)
	assert.False(t, cfg.Debug)

	// First load writes config.json and .gitignore into .bigsky/
	_, err := os.Stat(filepath.Join(dir, ".bigsky", "config.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, ".bigsky", ".gitignore"))
	assert.NoError(t, err)
}

func TestLoad_ReadsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bigsky"), 0o755))
	content := `{"counties_file": "data/counties.csv", "cities_file": "data/cities.txt", "debug": true}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bigsky", "config.json"), []byte(content), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "data/counties.csv", cfg.CountiesFile)
	assert.Equal(t, "data/cities.txt", cfg.CitiesFile)
	assert.True(t, cfg.Debug)
}

func TestLoad_RejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bigsky"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bigsky", "config.json"), []byte("{not json"), 0o644))

	m := NewManager(dir)
	assert.Error(t, m.Load())
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("BIGSKY_DATA", "/srv/bigsky")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bigsky"), 0o755))
	content := `{"counties_file": "${BIGSKY_DATA}/counties.csv", "cities_file": "$BIGSKY_DATA/cities.txt"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bigsky", "config.json"), []byte(content), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "/srv/bigsky/counties.csv", cfg.CountiesFile)
	assert.Equal(t, "/srv/bigsky/cities.txt", cfg.CitiesFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIGSKY_CITIES_FILE", "/tmp/elsewhere.txt")
	t.Setenv("BIGSKY_DEBUG", "1")

	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	cfg := m.Get()
	assert.Equal(t, "/tmp/elsewhere.txt", cfg.CitiesFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "MontanaCounties.csv", cfg.CountiesFile, "untouched settings keep defaults")
}

func TestSet_Persists(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)
	require.NoError(t, m.Load())

	require.NoError(t, m.Set("debug", "true"))
	require.NoError(t, m.Set("counties_file", "other.csv"))

	// A fresh manager sees the saved values.
	m2 := NewManager(dir)
	require.NoError(t, m2.Load())
	assert.True(t, m2.Get().Debug)
	assert.Equal(t, "other.csv", m2.Get().CountiesFile)
}

func TestSet_UnknownKey(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Load())
	assert.Error(t, m.Set("theme", "fire"))
}

func TestLoad_KeepsExistingGitignore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bigsky"), 0o755))
	custom := "# mine\n"
	gitignorePath := filepath.Join(dir, ".bigsky", ".gitignore")
	require.NoError(t, os.WriteFile(gitignorePath, []byte(custom), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())

	data, err := os.ReadFile(gitignorePath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}
