package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/esperanca/internal/config"
	"github.com/nfrund/esperanca/internal/logging"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/rendering"
	"github.com/nfrund/esperanca/internal/server"
)

// WasmFile can be set at build time to point the shell at another bundle.
// Example: go build -ldflags "-X 'main.WasmFile=esperanca.min.wasm'"
var WasmFile string

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogFormat, cfg.LogLevel)

	shell := pages.DefaultShellOptions()
	if WasmFile != "" {
		shell.WasmFile = WasmFile
	}

	s := server.New(server.Options{
		Addr:      cfg.ServerAddr,
		StaticDir: cfg.StaticDir,
		Shell:     shell,
		Logger:    logger,
	}, rendering.NewNodeRenderer())
	s.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Start(ctx); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
