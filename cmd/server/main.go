package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/gogoz/internal/config"
	"github.com/nfrund/gogoz/internal/logging"
	"github.com/nfrund/gogoz/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	s, err := server.New(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := s.Start(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
