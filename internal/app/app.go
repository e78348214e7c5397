package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/jucer2cmake/internal/fsutil"
	"github.com/vk/jucer2cmake/internal/modules"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	config  *Config
	headers *modules.HeaderReader
}

// NewApp is the constructor for the main application. Logs go to logW; the
// generated script only ever goes to the output file.
func NewApp(logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if cfg.WorkDir == "" {
		wd, err := fsutil.WorkingDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		resolved := *cfg
		resolved.WorkDir = wd
		cfg = &resolved
	}

	headers, err := modules.NewHeaderReader(cfg.HeaderCacheSize)
	if err != nil {
		return nil, err
	}
	logger.Debug("Module header cache created.", "size", cfg.HeaderCacheSize)

	return &App{
		logger:  logger,
		config:  cfg,
		headers: headers,
	}, nil
}

// Config returns the resolved configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
