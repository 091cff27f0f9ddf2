package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/esperanca/internal/pages"
	"github.com/nfrund/esperanca/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	// Pages are chosen by the URL fragment in the browser, so one document
	// serves every route.
	s.E.GET("/", s.ShellGet)
	if s.opts.StaticDir != "" {
		s.E.Static(s.opts.Shell.StaticPrefix, s.opts.StaticDir)
	} else {
		s.E.StaticFS(s.opts.Shell.StaticPrefix, web.Static())
	}

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

// ShellGet renders the shell document.
func (s *Server) ShellGet(c echo.Context) error {
	return s.renderer.RenderPage(c, http.StatusOK, pages.Shell(s.opts.Shell))
}
