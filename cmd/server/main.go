package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"pkcnic/internal/cnic/handler"
	"pkcnic/internal/cnic/service"
	httpapi "pkcnic/internal/http"
	"pkcnic/internal/platform/config"
	"pkcnic/internal/platform/httpserver"
	"pkcnic/internal/platform/logger"
	"pkcnic/internal/platform/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, warnings := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	for _, w := range warnings {
		log.Warn("config fallback", "detail", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	opts := httpapi.Options{
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
	}
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		opts.Metrics = m
		opts.Gatherer = prometheus.DefaultGatherer
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithMetrics(m),
	)
	router := httpapi.NewRouter(opts, handler.New(svc, log))
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting cnic gateway", "addr", cfg.Addr, "metrics", cfg.MetricsEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
