package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the site root.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet sends visitors to the About page, the only page this site serves.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/about")
}
