package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/vporoshin/depositbook/internal/adapters/storage/flatfile"
	"github.com/vporoshin/depositbook/internal/core/services"
	"github.com/vporoshin/depositbook/internal/platform/config"
	"github.com/vporoshin/depositbook/internal/ui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger; menu output goes to stdout, logs to stderr.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.IsProduction {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler).With(slog.String("session_id", uuid.NewString()))
	slog.SetDefault(logger)

	store, err := flatfile.Open(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		// A malformed record or unreadable file is fatal: the store cannot
		// safely guess intent and must not rewrite a file it failed to read.
		logger.Error("Failed to open record store",
			slog.String("data_dir", cfg.DataDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Record store loaded", slog.String("data_dir", cfg.DataDir))

	repos := flatfile.NewRepositoryProvider(store)
	container := services.NewServiceContainer(repos)

	ctx := services.ContextWithLogger(context.Background(), logger)
	ui.New(os.Stdin, os.Stdout, container).Run(ctx)
}
