//go:build tinygo || wasip1

// Spin is the WASI component entry point. Build with:
//
//	tinygo build -target=wasip1 -gc=leaking -no-debug -o main.wasm ./cmd/spin
//
// Configuration comes from the component's environment variables only.
package main

import (
	"log/slog"
	"net/http"
	"os"

	spinhttp "github.com/fermyon/spin/sdk/go/v2/http"

	"github.com/angeloszaimis/wasi-qr-router/config"
	"github.com/angeloszaimis/wasi-qr-router/internal/app"
	"github.com/angeloszaimis/wasi-qr-router/internal/host"
	"github.com/angeloszaimis/wasi-qr-router/pkg/logger"
)

func init() {
	cfg, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	// stdout is owned by the host
	log := logger.New(cfg.Logging.Level, cfg.Logging.AddSource, cfg.Server.Environment, os.Stderr)

	r, err := app.New(cfg, log)
	if err != nil {
		log.Error("Failed to build router", slog.Any("err", err))
		os.Exit(1)
	}

	h := host.Handler(log, r)
	spinhttp.Handle(func(w http.ResponseWriter, req *http.Request) {
		h.ServeHTTP(w, req)
	})
}

func main() {}
