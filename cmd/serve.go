package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"advisor/internal/advisor"
	"advisor/internal/api"
	"advisor/internal/api/handler/v1handler"
	"advisor/internal/catalog"
	"advisor/internal/config"
	"advisor/internal/leads"
	"advisor/internal/recommend"
	"advisor/internal/worker"
	"advisor/pkg/cache/rediscache"
	"advisor/pkg/crm/webhook"
	"advisor/pkg/logger"
	"advisor/pkg/metrics"
	"advisor/pkg/storage"
	"advisor/pkg/storage/file"
	"advisor/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// catalogSource returns the configured catalog reader. pg is nil unless a
// postgres connection was opened.
func catalogSource(cfg *config.Config, pg *postgres.PgSQL) storage.CatalogReader {
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
		return pg
	}

	return file.New(cfg.Catalog.Path)
}

// newProvider loads the catalog once so a broken source fails at startup.
func newProvider(ctx context.Context, cfg *config.Config, source storage.CatalogReader) *catalog.Provider {
	provider := catalog.New(source, catalog.NewOptions(cfg))
	if _, err := provider.Reload(logger.WithFields(ctx, zap.String("source", cfg.Catalog.Source))); err != nil {
		logger.Fatal(ctx, "could not load catalog", zap.Error(err))
	}

	return provider
}

func newEngine(ctx context.Context, cfg *config.Config, meter metric.Meter) *recommend.Engine {
	opts := recommend.NewOptions(cfg)
	opts.Meter = meter

	engine, err := recommend.New(opts)
	if err != nil {
		logger.Fatal(ctx, "could not create recommendation engine", zap.Error(err))
	}

	return engine
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and lead forwarding workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			var pg *postgres.PgSQL
			if cfg.Catalog.Source == config.CatalogSourcePostgres || cfg.Leads.Enabled {
				var closeStrg func()
				pg, closeStrg = getPostgres(ctx, cfg)
				defer closeStrg()
			}

			deps := advisor.Deps{
				Catalog: newProvider(ctx, cfg, catalogSource(cfg, pg)),
				Engine:  newEngine(ctx, cfg, mp.Meter("advisor/recommend")),
			}

			if cfg.Cache.Enabled {
				c := rediscache.New(rediscache.NewOptions(cfg))
				if err := c.Ping(ctx); err != nil {
					logger.Warn(ctx, "recommendation cache is not reachable", zap.Error(err))
				}
				defer func() { _ = c.Close() }()
				deps.Cache = c
			}

			stopWorkers := func(context.Context) {}
			if cfg.Leads.Enabled {
				l := leads.New(pg, webhook.New(nil, webhook.NewOptions(cfg)), leads.NewOptions(cfg))
				deps.Leads = l

				runner, err := worker.Start(ctx, pg.Pool, l, worker.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not start lead workers", zap.Error(err))
				}
				stopWorkers = func(ctx context.Context) {
					logger.Info(ctx, "stopping lead workers...")
					if err := runner.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop lead workers", zap.Error(err))
					}
				}
			}

			apiDeps := api.Deps{
				Deps:          v1handler.Deps{Advisor: advisor.New(deps)},
				MeterProvider: mp,
			}
			if pg != nil {
				apiDeps.HealthCheck = pg.Ping
			}
			stopWebserver := setupServer(ctx, cfg, apiDeps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
