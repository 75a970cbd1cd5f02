package about

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/handlers"
	"github.com/nfrund/vep/internal/middleware"
	"github.com/nfrund/vep/internal/module"
	"github.com/nfrund/vep/internal/pubsub"
	"github.com/nfrund/vep/internal/registry"
	"github.com/nfrund/vep/internal/rendering"
)

// AboutModule serves the About page, its metadata and the preview image.
type AboutModule struct {
	module.BaseModule
	content    *content.Store
	cache      *rendering.PageCache
	renderer   rendering.Renderer
	subscriber pubsub.Subscriber
	baseURL    string
}

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Content    *content.Store
	Cache      *rendering.PageCache
	Renderer   rendering.Renderer
	Subscriber pubsub.Subscriber
	BaseURL    string
}

// New creates a new instance of the module.
func New(deps Dependencies) *AboutModule {
	return &AboutModule{
		content:    deps.Content,
		cache:      deps.Cache,
		renderer:   deps.Renderer,
		subscriber: deps.Subscriber,
		baseURL:    deps.BaseURL,
	}
}

// Name returns the module's unique identifier.
func (m *AboutModule) Name() string {
	return "about"
}

// Register shares the content store so the server can watch its file.
func (m *AboutModule) Register(reg *registry.Registry) error {
	slog.Info("Registering AboutModule")
	registry.Set(reg, registry.ContentStoreKey, m.content)
	return nil
}

// Boot sets up the routes and starts invalidating the page cache whenever
// the content is reloaded. g is mounted at the site root.
func (m *AboutModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting AboutModule: Setting up routes...")

	if m.subscriber != nil {
		if err := m.subscriber.Subscribe(ctx, content.ReloadedEvent.Name(), m.onReloaded); err != nil {
			return err
		}
	}

	aboutHandler := handlers.NewAboutHandler(m.content, m.baseURL, m.renderer, m.cache)
	reloadHandler := handlers.NewReloadHandler(m.content, m.cache)
	ogHandler := handlers.NewOGImageHandler(m.content, m.renderer)

	g.GET("/about", aboutHandler.AboutGet)
	g.GET("/about/metadata.json", aboutHandler.AboutMetadataGet)
	g.POST("/about/reload", reloadHandler.ReloadPost, middleware.RateLimiter())
	g.GET("/og", ogHandler.OGImageGet, middleware.RateLimiter())
	return nil
}

func (m *AboutModule) onReloaded(ctx context.Context, msg pubsub.Message) error {
	evt, err := content.ReloadedEvent.Decode(msg)
	if err != nil {
		return err
	}
	m.cache.Invalidate()
	slog.Info("Content reloaded, page cache cleared", "path", evt.Path, "reloaded_at", evt.ReloadedAt)
	return nil
}
