// Package main is the entry point for the home server. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/pio-home/internal/adapters/http"
	"github.com/jsamuelsen11/pio-home/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pio-home/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pio-home/internal/adapters/mcp"

	"github.com/jsamuelsen11/pio-home/internal/adapters/clients/registry"
	"github.com/jsamuelsen11/pio-home/internal/adapters/pioexec"
	"github.com/jsamuelsen11/pio-home/internal/adapters/platforms"
	"github.com/jsamuelsen11/pio-home/internal/adapters/projectconfig"
	"github.com/jsamuelsen11/pio-home/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/pio-home/internal/app"
	"github.com/jsamuelsen11/pio-home/internal/platform/config"
	"github.com/jsamuelsen11/pio-home/internal/platform/health"
	"github.com/jsamuelsen11/pio-home/internal/platform/httpclient"
	"github.com/jsamuelsen11/pio-home/internal/platform/logging"
	"github.com/jsamuelsen11/pio-home/internal/platform/telemetry"
	"github.com/jsamuelsen11/pio-home/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	// The core home directory is absent until the first platform install,
	// so its check only degrades readiness.
	coreHomeCheck = "core-home"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var logOpts []logging.Option
	if home, err := homedir.Dir(); err == nil {
		logOpts = append(logOpts, logging.WithHomeDir(home))
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr, logOpts...)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	checks := do.MustInvoke[ports.HealthRegistry](injector)
	checks.Register(do.MustInvoke[*pioexec.Runner](injector))
	checks.Register(do.MustInvoke[*sqlite.Store](injector))
	checks.Register(health.NewCheck(coreHomeCheck, func(context.Context) error {
		_, err := os.Stat(cfg.Core.HomeDir)
		return err
	}))
	if cfg.Registry.Enabled {
		checks.Register(do.MustInvoke[*registry.Client](injector))
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-server.Ready():
		logger.Info("pio home ready",
			slog.String("rpc_url", "http://"+server.Addr()+adapthttp.RPCPath),
			slog.Bool("mcp", cfg.MCP.Enabled),
		)
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Close the state database once no request can reach it.
	if err := do.MustInvoke[*sqlite.Store](injector).Close(); err != nil {
		logger.Error("state database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Providers, error) {
	if !cfg.Telemetry.Enabled {
		return &telemetry.Providers{}, nil
	}
	return telemetry.Setup(ctx, telemetry.Options{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		Exporter:       cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
	})
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound adapters.
	do.Provide(injector, func(i do.Injector) (*pioexec.Runner, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return pioexec.New(&cfg.Core, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*platforms.Local, error) {
		return platforms.NewLocal(cfg.Core.HomeDir), nil
	})

	do.Provide(injector, func(i do.Injector) (*registry.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Registry.Client, registry.ServiceName, metrics, logger)
		return registry.NewClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BoardRegistry, error) {
		boards := []ports.BoardRegistry{do.MustInvoke[*platforms.Local](i)}
		if cfg.Registry.Enabled {
			boards = append(boards, do.MustInvoke[*registry.Client](i))
		}
		return registry.NewChain(boards...), nil
	})

	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.Open(context.Background(), cfg.State.DBPath)
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.StateService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewStateService(store, cfg.State.DefaultProjectsDir, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewProjectService(app.ProjectCollaborators{
			Configs:   projectconfig.NewReader(),
			Boards:    do.MustInvoke[ports.BoardRegistry](i),
			Platforms: do.MustInvoke[*platforms.Local](i),
			Runner:    do.MustInvoke[*pioexec.Runner](i),
			State:     do.MustInvoke[ports.StateService](i),
		}, &cfg.Core, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Inbound adapters.
	do.Provide(injector, func(i do.Injector) (*handlers.RPCHandler, error) {
		projects := do.MustInvoke[ports.ProjectService](i)
		state := do.MustInvoke[ports.StateService](i)
		return handlers.NewRPCHandler(projects, state), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		checks := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(checks, registry.ServiceName, coreHomeCheck), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		rpcH := do.MustInvoke[*handlers.RPCHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var mcpH nethttp.Handler
		if cfg.MCP.Enabled {
			projects := do.MustInvoke[ports.ProjectService](i)
			mcpH = mcp.NewHandler(mcp.NewServer(projects, version, logger))
		}

		pipeline := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)

		return adapthttp.NewRouter(rpcH, healthH, mcpH, cfg.MCP.Path, pipeline), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
