package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start boots the modules and runs the HTTP server until an interrupt or
// terminate signal arrives, then shuts everything down gracefully.
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.RegisterRoutes(ctx); err != nil {
		return err
	}
	if s.watcher != nil {
		go s.watcher.Run(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		addr := s.Cfg.GetAppAddr()
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-waitForShutdown():
		slog.Info("Shutting down server")
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		s.Shutdown(context.Background())
		return err
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	return s.Shutdown(shutdownCtx)
}
