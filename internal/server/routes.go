package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/handlers"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler()

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
