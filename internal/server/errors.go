package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/esperanca/internal/middleware"
)

// setupErrorHandling logs unhandled errors with a stack trace before handing
// them to echo's default handler. HTTP errors are logged without one.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("Server error", "status", he.Code, "error", err)
			} else {
				logger.Debug("Client error", "status", he.Code, "path", c.Request().URL.Path)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
