package server

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/esperanca/internal/middleware"
	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/internal/rendering"
)

// Options configure the static host.
type Options struct {
	Addr string
	// StaticDir serves assets from disk; empty serves the embedded ones.
	StaticDir string
	Shell     pages.ShellOptions
	Logger    *slog.Logger
}

// Server serves the shell document and the assets the page loads: the
// stylesheet, images and the wasm bundle.
type Server struct {
	E        *echo.Echo
	opts     Options
	renderer rendering.Renderer
	logger   *slog.Logger
}

// New creates a new Server instance with its middleware installed.
func New(opts Options, renderer rendering.Renderer) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Shell == (pages.ShellOptions{}) {
		opts.Shell = pages.DefaultShellOptions()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger(opts.Logger))
	e.Use(echomw.Recover())
	setupErrorHandling(e)

	return &Server{
		E:        e,
		opts:     opts,
		renderer: renderer,
		logger:   opts.Logger,
	}
}
