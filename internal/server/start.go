package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nfrund/vep/internal/content"
	"github.com/nfrund/vep/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Start runs the HTTP server (and the content watcher when enabled) until
// ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("Starting server", "addr", s.Cfg.GetAddr(), "base_url", s.Cfg.GetAppBaseURL())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if store, ok := s.watchedStore(); ok {
		group.Go(func() error {
			return store.Watch(ctx)
		})
	}

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// watchedStore returns the content store a module registered, when watching
// is enabled and the store is backed by a file.
func (s *Server) watchedStore() (*content.Store, bool) {
	if !s.Cfg.GetContentWatch() {
		return nil, false
	}
	store, ok := registry.Get(s.Registry, registry.ContentStoreKey)
	if !ok || store.Path() == "" {
		return nil, false
	}
	return store, true
}
