package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xvierd/skycast/internal/adapters/notification"
	"github.com/xvierd/skycast/internal/adapters/storage"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/logger"
	"github.com/xvierd/skycast/internal/ports"
	"github.com/xvierd/skycast/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config   *config.Config
	storage  ports.Storage
	forecast *services.ForecastService
	notifier *notification.Notifier
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
// logToStderr mirrors debug logs to stderr for commands that do not take
// over the terminal.
func initializeServices(logToStderr bool) error {
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		app.config = config.DefaultConfig()
	}

	if err := logger.Init(logger.Config{
		Debug:  debugMode || app.config.Log.Debug,
		LogDir: config.GetLogDir(app.config),
		Stderr: logToStderr,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	app.notifier = notification.New(&app.config.Notifications)

	path := dbPath
	if path == "" {
		path = config.GetDBPath(app.config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.storage, err = storage.New(path)
	if err != nil {
		// The screen still works from the built-in forecast.
		logger.Warn("forecast cache unavailable", "path", path, "err", err)
		app.storage = nil
	}

	app.forecast = services.NewForecastService(app.storage)
	logger.Debug("services initialized", "db", path)
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		err := app.storage.Close()
		app.storage = nil
		return err
	}
	return nil
}
