package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/vep/internal/app"
	"github.com/nfrund/vep/internal/config"
	"github.com/nfrund/vep/internal/logging"
	"github.com/nfrund/vep/internal/server"
	"github.com/spf13/afero"
)

func main() {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance.
	s, err := server.New(cfg, afero.NewOsFs())
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Register and boot modules, then the core routes.
	if err := s.InitModules(ctx, app.NewModules(s.Deps)); err != nil {
		slog.Error("Failed to initialize modules", "error", err)
		os.Exit(1)
	}
	s.RegisterRoutes()

	// Start the server; returns after a graceful shutdown.
	if err := s.Start(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
