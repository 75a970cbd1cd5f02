package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/middleware"
)

// setupErrorHandling installs an error handler that logs unexpected errors
// with a stack trace before handing off to Echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := middleware.FromContext(c.Request().Context())

		var he *echo.HTTPError
		if errors.As(err, &he) {
			if he.Code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err, "path", c.Request().URL.Path)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
