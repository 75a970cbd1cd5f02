package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/middleware"
	"github.com/nfrund/vep/internal/rendering"
	"github.com/nfrund/vep/internal/seo"
	"github.com/nfrund/vep/internal/view"
	"github.com/nfrund/vep/web/src/templates/layouts"
	"github.com/nfrund/vep/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

const aboutCacheKey = "about"

// ContentSource provides the content currently in effect.
type ContentSource interface {
	Current() content.Content
}

// AboutHandler serves the About page and its metadata.
type AboutHandler struct {
	content  ContentSource
	baseURL  string
	renderer rendering.Renderer
	cache    *rendering.PageCache
}

// NewAboutHandler creates a new AboutHandler. cache may be nil to render on every request.
func NewAboutHandler(src ContentSource, baseURL string, renderer rendering.Renderer, cache *rendering.PageCache) *AboutHandler {
	return &AboutHandler{
		content:  src,
		baseURL:  baseURL,
		renderer: renderer,
		cache:    cache,
	}
}

// AboutGet renders the about page.
func (h *AboutHandler) AboutGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	// 1. Get the page body, rendered once per content version.
	body, err := h.body(ctx)
	if err != nil {
		logger.Error("Failed to render about page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render page").SetInternal(err)
	}

	// 2. Wrap it in the Base layout with this request's flash messages.
	page := layouts.Base(layouts.Page{
		Meta:     seo.AboutMetadata(h.baseURL),
		Language: h.content.Current().Locale,
		Flashes:  view.GetFlashData(c),
	}, view.AdaptGomponentToTempl(g.Raw(string(body))))

	// 3. Render the final component.
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// AboutMetadataGet returns the page metadata and JSON-LD document as JSON.
func (h *AboutHandler) AboutMetadataGet(c echo.Context) error {
	current := h.content.Current()
	return c.JSON(http.StatusOK, NewMetadataResponse(
		seo.AboutMetadata(h.baseURL),
		seo.NewOrganization(current, h.baseURL),
	))
}

// body returns the rendered page content. The content is read inside the
// render func so a cached page never predates the cache generation it is
// stored under.
func (h *AboutHandler) body(ctx context.Context) ([]byte, error) {
	render := func(ctx context.Context) ([]byte, error) {
		return RenderAboutBody(ctx, h.renderer, h.content.Current(), h.baseURL)
	}
	if h.cache == nil {
		return render(ctx)
	}
	return h.cache.GetOrRender(ctx, aboutCacheKey, render)
}

// RenderAboutBody renders the page content (JSON-LD included) without the
// surrounding document.
func RenderAboutBody(ctx context.Context, r rendering.Renderer, c content.Content, baseURL string) ([]byte, error) {
	node, err := aboutContent(c, baseURL)
	if err != nil {
		return nil, err
	}
	return r.RenderComponent(ctx, node)
}

func aboutContent(c content.Content, baseURL string) (g.Node, error) {
	jsonLD, err := seo.JSONLDScript(seo.NewOrganization(c, baseURL))
	if err != nil {
		return nil, fmt.Errorf("structured data: %w", err)
	}
	return pages.AboutContent(pages.AboutProps{Content: c, StructuredData: jsonLD}), nil
}

// RenderAboutDocument renders the complete HTML document, as served at /about
// without flash messages. Used for static export.
func RenderAboutDocument(ctx context.Context, r rendering.Renderer, c content.Content, baseURL string) ([]byte, error) {
	body, err := aboutContent(c, baseURL)
	if err != nil {
		return nil, err
	}
	page := layouts.Base(layouts.Page{
		Meta:     seo.AboutMetadata(baseURL),
		Language: c.Locale,
	}, view.AdaptGomponentToTempl(body))
	return r.RenderComponent(ctx, page)
}
