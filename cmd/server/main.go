package main

import (
	"log/slog"
	"os"

	"github.com/aboutmisha/flight-deals-bot/internal/di"
	httpServer "github.com/aboutmisha/flight-deals-bot/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	// Setup dependency injection
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	server.SetLogger(logger)

	if err := server.Start(); err != nil {
		slog.Error("Feed server stopped", "error", err)
		os.Exit(1)
	}
}
