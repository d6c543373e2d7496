package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/ldgraph/internal/config"
	"github.com/specialistvlad/ldgraph/internal/ctxlog"
	"github.com/specialistvlad/ldgraph/internal/metrics"
	"github.com/specialistvlad/ldgraph/internal/registry"
	"github.com/specialistvlad/ldgraph/internal/urdf"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	profile  *config.Profile
	source   *registry.RegisteredSource
	metrics  *metrics.Collector
	urdf     *urdf.Client

	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry and
// metrics. Startup failures panic; the entrypoint recovers them.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	if err != nil {
		panic(fmt.Sprintf("invalid logger configuration: %v", err))
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with Go handlers.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	if err := reg.ValidateRegistry(); err != nil {
		panic(err)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "sources", reg.SourceNames(), "sinks", reg.SinkNames())

	model := config.NewModel()
	if len(cfg.ProfilePaths) > 0 && loader != nil {
		loaded, err := loader.Load(ctx, cfg.ProfilePaths...)
		if err != nil {
			panic(fmt.Errorf("failed to load profiles: %w", err))
		}
		model.Merge(loaded)
		logger.Debug("Profiles loaded.", "count", len(loaded.Profiles))
	}

	selected, err := model.Profile(cfg.Profile)
	if err != nil {
		panic(err)
	}
	profile := selected.Clone()
	if cfg.FlowsURL != "" {
		profile.FlowsURL = cfg.FlowsURL
	}
	if err := reg.ValidateProfile(ctx, profile); err != nil {
		panic(err)
	}
	source, _ := reg.Source(profile.Source)
	logger.Debug("Profile selected.", "profile", profile.Name, "source", profile.Source)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		profile:  profile,
		source:   source,
		metrics:  metrics.NewCollector(),
		urdf:     urdf.NewClient(cfg.URDFURL, urdf.Options{Logger: logger}),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Profile returns the resolved exporter profile.
func (a *App) Profile() *config.Profile {
	return a.profile
}

// Metrics returns the application's collectors.
func (a *App) Metrics() *metrics.Collector {
	return a.metrics
}
