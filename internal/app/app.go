package app

import (
	"io"
	"log/slog"

	"github.com/tapastro/calsuffix/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	reg    *registry.Registry
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Results are written to outW; logs go to logW. Duplicate step registration
// is a programmer error and panics (callers recover for a clean exit).
func NewApp(outW, logW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All step modules registered.", "count", len(modules), "classes", len(reg.Classes()))

	return &App{
		outW:   outW,
		logger: logger,
		reg:    reg,
		config: appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.reg
}
