package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aboutmisha/flight-deals-bot/internal/di"
	searchService "github.com/aboutmisha/flight-deals-bot/internal/modules/search/service"
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
	// A missing mandatory credential must fail before any state is touched
	search, err := do.Invoke[*searchService.Service](injector)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	// One invocation runs to completion; an interrupt cancels in-flight calls
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := search.Run(ctx); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}
