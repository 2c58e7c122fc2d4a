// Package cli wires configuration, logging, and the favicon service for the
// webpageicon commands.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/webpageicon/internal/cli/styles"
	"github.com/bnema/webpageicon/internal/domain/build"
	"github.com/bnema/webpageicon/internal/infrastructure/config"
	"github.com/bnema/webpageicon/internal/infrastructure/favicon"
	"github.com/bnema/webpageicon/internal/logging"
)

// AppOptions are the process-level inputs to NewApp.
type AppOptions struct {
	// ConfigFile replaces the default config.toml lookup when set.
	ConfigFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
	// LogOutput receives log lines (stderr when nil).
	LogOutput io.Writer
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	// Services
	Icons *favicon.Service

	// Context with logger
	ctx context.Context
}

// NewApp loads configuration and creates the favicon service.
func NewApp(opts AppOptions) (*App, error) {
	manager, err := config.NewManager(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		manager.Set("logging.level", opts.LogLevel)
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	cfg := manager.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     out,
	})
	ctx := logging.WithContext(context.Background(), logger)

	if used := manager.ConfigFileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config file loaded")
	}

	diskLogger := logger.With().Str("component", "disk-cache").Logger()
	icons := favicon.NewService(favicon.Options{
		CacheDir:      cfg.Cache.Dir,
		MemoryEntries: cfg.Cache.MemoryEntries,
		Endpoint:      cfg.Fetch.Endpoint,
		Timeout:       cfg.Fetch.Timeout,
		Dedupe:        cfg.Fetch.Dedupe,
		Logger:        &diskLogger,
	})

	logger.Debug().
		Str("cache_dir", cfg.Cache.Dir).
		Int("memory_entries", cfg.Cache.MemoryEntries).
		Bool("dedupe", cfg.Fetch.Dedupe).
		Msg("favicon service ready")

	return &App{
		Config:  cfg,
		Manager: manager,
		Theme:   styles.NewTheme(),
		Logger:  logger,
		Icons:   icons,
		ctx:     ctx,
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext derives a context from parent that carries the app logger.
func (a *App) WithContext(parent context.Context) context.Context {
	return logging.WithContext(parent, a.Logger)
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.Icons != nil {
		released := a.Icons.ReleaseMemory(0)
		a.Logger.Trace().Int("released", released).Msg("memory tier released")
	}
	return nil
}
