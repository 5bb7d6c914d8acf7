package app

import (
	"fmt"
	"log/slog"

	"github.com/angeloszaimis/wasi-qr-router/config"
	"github.com/angeloszaimis/wasi-qr-router/internal/handler"
	"github.com/angeloszaimis/wasi-qr-router/internal/qr"
	"github.com/angeloszaimis/wasi-qr-router/internal/router"
)

// New builds the router serving the warm-up, greeting and QR routes.
func New(cfg *config.Config, logger *slog.Logger, opts ...router.Option) (*router.Router, error) {
	generator, err := qr.NewGenerator(cfg.QR.Engine, cfg.QR.Scale, cfg.QR.Border)
	if err != nil {
		return nil, fmt.Errorf("create qr generator: %w", err)
	}

	routes := []router.Route{
		{Path: cfg.Routes.WarmupPath, Handler: handler.NewWarmupHandler()},
		{Path: config.GreetingPath, Handler: handler.NewGreetingHandler(cfg.Routes.Greeting)},
		{Path: config.QRPath, Handler: handler.NewQRHandler(logger, generator)},
	}

	r, err := router.New(logger, routes, opts...)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	logger.Info("Route table ready",
		slog.Any("paths", r.Paths()),
		slog.String("qr_engine", cfg.QR.Engine))

	return r, nil
}
