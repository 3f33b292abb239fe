// Command clubgen asks the configured chat-completions API for a sample
// club, validates it, and writes it to disk as indented JSON.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/club-records/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/club-records/internal/app"
	"github.com/jsamuelsen11/club-records/internal/platform/config"
	"github.com/jsamuelsen11/club-records/internal/platform/httpclient"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

type options struct {
	profile   string
	configDir string
	companies int
	members   int
	events    int
	output    string
	unique    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "clubgen",
		Short:         "Generate a validated sample club through the chat API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, opts); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.profile, "profile", envOr("APP_PROFILE", "local"), "configuration profile")
	flags.StringVar(&opts.configDir, "config-dir", "configs", "directory holding the YAML configuration")
	flags.IntVar(&opts.companies, "companies", 0, "partner companies to request (0 uses the configured default)")
	flags.IntVar(&opts.members, "members", 0, "members to request (0 uses the configured default)")
	flags.IntVar(&opts.events, "events", 0, "events to request (0 uses the configured default)")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (defaults to generator.output_path)")
	flags.BoolVar(&opts.unique, "unique", false, "suffix the output file name with a random ID")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	otel, err := telemetry.Start(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		// The generation span and histogram are flushed even when ctx was canceled.
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.Provide(injector, func(i do.Injector) (ports.ClubSource, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Client, "llm-api", metrics, logger,
			httpclient.WithBearerToken(cfg.Generator.APIKey),
		)
		return acl.NewChatClient(client, cfg.Generator.Model, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.ClubService, error) {
		defaults := ports.GenerationSpec{
			Companies: cfg.Generator.Companies,
			Members:   cfg.Generator.Members,
			Events:    cfg.Generator.Events,
		}
		source := do.MustInvoke[ports.ClubSource](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewClubService(source, defaults, metrics, logger), nil
	})

	svc, err := do.Invoke[ports.ClubService](injector)
	if err != nil {
		return fmt.Errorf("resolving club service: %w", err)
	}

	c, err := svc.Generate(ctx, ports.GenerationSpec{
		Companies: opts.companies,
		Members:   opts.members,
		Events:    opts.events,
	})
	if err != nil {
		return fmt.Errorf("generating club: %w", err)
	}

	path := opts.output
	if path == "" {
		path = cfg.Generator.OutputPath
	}
	path = outputPath(path, opts.unique)

	if err := writeClub(path, c); err != nil {
		return err
	}

	logger.Info("club written",
		slog.String("path", path),
		slog.String("name", c.Name),
		slog.Int("members", len(c.Members)),
		slog.Int("partner_companies", len(c.PartnerCompanies)),
		slog.Int("events", len(c.Events)),
	)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
