package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"taxipark/internal/analyzer"
	"taxipark/internal/api"
	"taxipark/internal/api/handler/v1handler"
	"taxipark/internal/config"
	"taxipark/internal/worker"
	"taxipark/pkg/logger"
	"taxipark/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server := api.NewServer(deps, api.NewOptions(cfg))

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

func setupMetrics(ctx context.Context) (*prometheus.Registry, func(ctx context.Context)) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mp, err := metrics.NewMeterProvider(reg)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	return reg, func(ctx context.Context) {
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg, stopMetrics := setupMetrics(ctx)
			niceVerdicts, err := metrics.NewNiceVerdicts(reg)
			if err != nil {
				logger.Fatal(ctx, "could not register nice verdicts metric", zap.Error(err))
			}
			httpRequests, err := metrics.NewHTTPRequests(reg)
			if err != nil {
				logger.Fatal(ctx, "could not register http requests metric", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			reporter, err := analyzer.NewReporter(otel.GetMeterProvider(), otel.GetTracerProvider())
			if err != nil {
				logger.Fatal(ctx, "could not create reporter", zap.Error(err))
			}
			a := analyzer.New(strg, reporter, analyzer.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, a, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{
				Deps: v1handler.Deps{
					Analyzer:     a,
					NiceVerdicts: niceVerdicts,
					HTTPRequests: httpRequests,
				},
				Gatherer: reg,
			}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopMetrics(shutdownCtx)
		},
	}

	return cmd
}
