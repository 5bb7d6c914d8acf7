// Server runs the QR router natively for local development. In production the
// same route table is served by the Spin component in cmd/spin.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/angeloszaimis/wasi-qr-router/config"
	"github.com/angeloszaimis/wasi-qr-router/internal/app"
	"github.com/angeloszaimis/wasi-qr-router/internal/host"
	"github.com/angeloszaimis/wasi-qr-router/internal/httpserver"
	"github.com/angeloszaimis/wasi-qr-router/internal/metrics"
	"github.com/angeloszaimis/wasi-qr-router/internal/router"
	"github.com/angeloszaimis/wasi-qr-router/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.AddSource, cfg.Server.Environment, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	servers, err := buildServers(cfg, log)
	if err != nil {
		log.Error("Failed to create servers", slog.Any("err", err))
		os.Exit(1)
	}

	if err := run(ctx, log, servers); err != nil {
		log.Error("Server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

// buildServers returns the application server and, when metrics.address is
// set, the metrics server.
func buildServers(cfg *config.Config, log *slog.Logger) ([]*httpserver.Server, error) {
	var (
		opts      []router.Option
		collector *metrics.Metrics
	)

	if cfg.Metrics.Address != "" {
		collector = metrics.NewMetrics()
		opts = append(opts, router.WithObserver(collector))
	}

	r, err := app.New(cfg, log, opts...)
	if err != nil {
		return nil, err
	}

	appSrv, err := httpserver.New("app", cfg.Server.Address, host.Handler(log, r), log)
	if err != nil {
		return nil, err
	}

	servers := []*httpserver.Server{appSrv}

	if collector != nil {
		metricsSrv, err := httpserver.New("metrics", cfg.Metrics.Address, newMetricsMux(collector), log)
		if err != nil {
			return nil, err
		}
		servers = append(servers, metricsSrv)
	}

	return servers, nil
}

func newMetricsMux(m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /metrics", m.Handler())
	return mux
}

// run starts every server and blocks until ctx is cancelled or one of them
// fails, then shuts all of them down.
func run(ctx context.Context, log *slog.Logger, servers []*httpserver.Server) error {
	errCh := make(chan error, len(servers))

	for _, srv := range servers {
		go func(s *httpserver.Server) {
			errCh <- s.Start()
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errCh:
	}

	for _, srv := range servers {
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("Error during shutdown", slog.Any("err", err))
		}
	}

	return runErr
}
