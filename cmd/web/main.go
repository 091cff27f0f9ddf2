//go:build js && wasm

// Command web is the page engine compiled to WebAssembly. It attaches to the
// shell document served by cmd/server and keeps running for the life of the
// page.
package main

import (
	"context"
	"log/slog"

	"github.com/nfrund/esperanca/internal/app"
	"github.com/nfrund/esperanca/internal/config"
	"github.com/nfrund/esperanca/internal/dom/browser"
	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/logging"
)

// DefaultPage can be set at build time.
// Example: GOOS=js GOARCH=wasm go build -ldflags "-X 'main.DefaultPage=donate'"
var DefaultPage string

func main() {
	cfg := config.Default()
	if key, ok := domain.ParsePageKey(DefaultPage); ok {
		cfg.DefaultPage = string(key)
	}
	logger := logging.New(cfg.LogFormat, "info")

	page, err := app.New(app.Dependencies{
		Config: cfg,
		Host:   browser.New().Host(),
		Store:  browser.NewLocalStorage(),
		Logger: logger,
	})
	if err != nil {
		slog.Error("Failed to start page", "error", err)
		return
	}
	page.Start(context.Background())

	select {}
}
