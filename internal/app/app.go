package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/wavegrid/internal/config"
	"github.com/specialistvlad/wavegrid/internal/ctxlog"
	"github.com/specialistvlad/wavegrid/internal/metrics"
	"github.com/specialistvlad/wavegrid/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	ctx        context.Context
	config     *Config
	registry   *registry.Registry
	metrics    *metrics.Registry
	grid       *config.Grid
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own logger, registry and metrics. Run
// results go to outW and logs to logW. With no modules, the core modules
// are registered.
func NewApp(outW, logW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	reg := registry.New().Load(modules...)
	logger.Debug("All Go modules registered.", "count", len(modules))

	// A mismatch between a kind's declared records and its factory is a
	// programmer error.
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.", "kinds", len(reg.Kinds()))

	return &App{
		outW:     outW,
		logger:   logger,
		ctx:      ctx,
		config:   appConfig,
		registry: reg,
		metrics:  metrics.NewRegistry(),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Metrics returns the application's metrics registry.
func (a *App) Metrics() *metrics.Registry {
	return a.metrics
}

// Grid returns the most recently loaded grid, or nil.
func (a *App) Grid() *config.Grid {
	return a.grid
}
