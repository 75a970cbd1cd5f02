package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nfrund/vep/internal/app"
)

const shutdownTimeout = 10 * time.Second

// Shutdown stops the HTTP server, then the modules, then the core services.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")

	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := app.Shutdown(ctx, s.injector); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
