// Package main is the entry point for the club-records service. It wires all
// dependencies using samber/do v2, serves the validation and generation API,
// and shuts down gracefully on SIGINT/SIGTERM.
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

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/club-records/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/club-records/internal/adapters/http"
	"github.com/jsamuelsen11/club-records/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/club-records/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/club-records/internal/app"
	"github.com/jsamuelsen11/club-records/internal/platform/config"
	"github.com/jsamuelsen11/club-records/internal/platform/health"
	"github.com/jsamuelsen11/club-records/internal/platform/httpclient"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

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

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Start(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "llm-api", metrics, logger,
			httpclient.WithBearerToken(cfg.Generator.APIKey),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.ChatClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewChatClient(client, cfg.Generator.Model, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ClubService, error) {
		source := do.MustInvoke[*acl.ChatClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		defaults := ports.GenerationSpec{
			Companies: cfg.Generator.Companies,
			Members:   cfg.Generator.Members,
			Events:    cfg.Generator.Events,
		}
		return app.NewClubService(source, defaults, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RecordService, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRecordService(logger,
			app.WithBatchLimits(cfg.Validation.BatchWorkers, cfg.Validation.MaxBatchSize),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*acl.ChatClient](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.RecordHandler, error) {
		return handlers.NewRecordHandler(do.MustInvoke[ports.RecordService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ClubHandler, error) {
		return handlers.NewClubHandler(do.MustInvoke[ports.ClubService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		recordH := do.MustInvoke[*handlers.RecordHandler](i)
		clubH := do.MustInvoke[*handlers.ClubHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(recordH, clubH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.BodyLimit(cfg.Server.MaxBodyBytes),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
