// Package logging configures the zap logger shared across Bigsky.
//
// The TUI owns the terminal, so log output only ever goes to a file under
// the data directory. With debug disabled the logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup builds the application logger. When debug is off it returns a
// no-op logger so callers never need a nil check.
func Setup(dir string, debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{filepath.Join(dir, "debug.log")}
	cfg.ErrorOutputPaths = []string{filepath.Join(dir, "debug.log")}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
