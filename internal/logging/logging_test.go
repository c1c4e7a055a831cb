package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup_DebugOffIsNoop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := Setup(dir, false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped on the floor")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "no-op logging must not create the log directory")
}

func TestSetup_DebugWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := Setup(dir, true)
	require.NoError(t, err)
	logger.Debug("loaded counties", zap.Int("count", 56))
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "loaded counties")
}
