package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/winbridge/internal/capability"
	"github.com/vk/winbridge/internal/config"
	"github.com/vk/winbridge/internal/ctxlog"
	"github.com/vk/winbridge/internal/registry"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	invoker  *capability.Invoker
	model    *config.Model
}

// New is the constructor for the host application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Extra modules can be injected for tests; when none are given and the
// configuration enables the optional layouter, the compiled-in modules are
// registered.
func New(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := config.Load(ctx, appConfig.ConfigPath, appConfig.TermWidth, appConfig.TermHeight)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded into model.")

	reg := registry.New()
	if len(modules) == 0 && model.LayouterEnabled() {
		modules = optionalModules
	}
	for _, mod := range modules {
		reg.Register(ctx, mod)
	}
	logger.Debug("Modules registered.", "count", len(modules))

	resolver := capability.NewResolver(reg)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		invoker:  capability.NewInvoker(resolver),
		model:    model,
	}
}
