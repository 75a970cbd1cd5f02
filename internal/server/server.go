package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/vep/internal/app"
	"github.com/nfrund/vep/internal/config"
	"github.com/nfrund/vep/internal/handlers"
	appmiddleware "github.com/nfrund/vep/internal/middleware"
	"github.com/nfrund/vep/internal/module"
	"github.com/nfrund/vep/internal/registry"
	"github.com/nfrund/vep/internal/rendering"
	"github.com/nfrund/vep/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Deps     app.Dependencies
	Registry *registry.Registry

	injector do.Injector
	modules  []module.Module
}

// New creates a new Server instance. Content is read from fs.
func New(cfg config.Provider, fs afero.Fs) (*Server, error) {
	injector := app.NewInjector(cfg, fs)
	deps, err := app.Resolve(injector)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Validator = handlers.NewValidator()
	if r, ok := deps.Renderer.(*rendering.UniversalRenderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	// Serve static files embedded from the "web/static" directory.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Deps:     deps,
		Registry: registry.New(cfg),
		injector: injector,
	}, nil
}

// InitModules registers every module, then boots them. ctx bounds the
// background work modules start in Boot.
func (s *Server) InitModules(ctx context.Context, modules []module.Module) error {
	s.modules = modules

	for _, m := range modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range modules {
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Info("Module booted", "module", m.Name())
	}
	return nil
}
