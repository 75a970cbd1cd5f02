package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/middleware"
	"github.com/nfrund/vep/internal/rendering"
	"github.com/nfrund/vep/internal/view"
)

// reloadFailedMessage is shown instead of the error, which names server paths.
const reloadFailedMessage = "Content reload failed. See the server log for details."

// Reloader re-reads content from its source.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ReloadHandler re-reads the content file on request.
type ReloadHandler struct {
	reloader Reloader
	cache    *rendering.PageCache
}

// NewReloadHandler creates a new ReloadHandler.
func NewReloadHandler(reloader Reloader, cache *rendering.PageCache) *ReloadHandler {
	return &ReloadHandler{reloader: reloader, cache: cache}
}

// ReloadPost reloads the content and redirects back to the page with a flash message.
func (h *ReloadHandler) ReloadPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	if err := h.reloader.Reload(c.Request().Context()); err != nil {
		logger.Warn("Content reload rejected", "error", err)
		view.SetFlashError(c, reloadFailedMessage)
		return c.Redirect(http.StatusSeeOther, "/about")
	}

	if h.cache != nil {
		h.cache.Invalidate()
	}
	view.SetFlashSuccess(c, "Content reloaded.")
	return c.Redirect(http.StatusSeeOther, "/about")
}
