// Package app wires configuration, logging, and the lookup store together.
package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/billie-coop/bigsky/internal/config"
	"github.com/billie-coop/bigsky/internal/logging"
	"github.com/billie-coop/bigsky/internal/lookup"
)

// App holds all the core services and business logic
type App struct {
	Config *config.Manager
	Store  *lookup.Store
	Log    *zap.Logger
}

// New creates a new app with all services initialized. The working
// directory anchors the .bigsky/ data directory and any relative data
// file paths from the config.
func New(workingDir string) (*App, error) {
	cfgManager := config.NewManager(workingDir)
	if err := cfgManager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := cfgManager.Get()

	logger, err := logging.Setup(filepath.Join(workingDir, ".bigsky", "logs"), cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	store := lookup.New(
		resolvePath(workingDir, cfg.CountiesFile),
		resolvePath(workingDir, cfg.CitiesFile),
		logger,
	)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load lookup data: %w", err)
	}

	logger.Info("app ready",
		zap.Int("counties", store.CountyCount()),
		zap.Int("cities", store.CityCount()),
	)

	return &App{
		Config: cfgManager,
		Store:  store,
		Log:    logger,
	}, nil
}

// Close flushes the logger. Safe to call on a half-initialized app.
func (a *App) Close() {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
}

func resolvePath(workingDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workingDir, path)
}
