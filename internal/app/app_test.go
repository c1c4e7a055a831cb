package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `License Plate Prefix,County,County Seat
5,Lewis and Clark,Helena
6,Gallatin,Bozeman
`

func writeWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MontanaCounties.csv"), []byte(testCSV), 0o644))
	return dir
}

func TestNew_LoadsEverything(t *testing.T) {
	dir := writeWorkDir(t)

	a, err := New(dir)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 2, a.Store.CountyCount())

	county, ok := a.Store.FindCounty(5)
	require.True(t, ok)
	assert.Equal(t, "Lewis and Clark", county.Name)

	// Seats are usable as cities right away.
	match, ok := a.Store.FindCity("Helena")
	require.True(t, ok)
	assert.Equal(t, 5, match.Prefix)

	// First run scaffolds the data directory.
	_, err = os.Stat(filepath.Join(dir, ".bigsky", "config.json"))
	assert.NoError(t, err)
}

func TestNew_MissingCountiesFile(t *testing.T) {
	dir := t.TempDir()

	_, err := New(dir)
	assert.Error(t, err)
}

func TestNew_AddedCitiesLandInDataDir(t *testing.T) {
	dir := writeWorkDir(t)

	a, err := New(dir)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Store.AddCity("Ennis", 6))

	data, err := os.ReadFile(filepath.Join(dir, ".bigsky", "cities.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ennis,6\n", string(data))
}

func TestNew_RespectsConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "c.csv"), []byte(testCSV), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".bigsky"), 0o755))
	cfgJSON := `{"counties_file": "data/c.csv", "cities_file": "data/cities.txt", "debug": false}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bigsky", "config.json"), []byte(cfgJSON), 0o644))

	a, err := New(dir)
	require.NoError(t, err)
	defer a.Close()

	require.NoError(t, a.Store.AddCity("Townsend", 5))
	_, statErr := os.Stat(filepath.Join(dir, "data", "cities.txt"))
	assert.NoError(t, statErr)
}
