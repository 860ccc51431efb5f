package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fibulaproject/fibulopedia/internal/catalog"
	"github.com/fibulaproject/fibulopedia/internal/config"
	"github.com/fibulaproject/fibulopedia/internal/handler"
	"github.com/fibulaproject/fibulopedia/internal/search"
	"github.com/fibulaproject/fibulopedia/internal/server"
	"github.com/fibulaproject/fibulopedia/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// @title Fibulopedia API
// @version 1.0
// @description Read-only reference API for the Fibula Project game server:
// @description weapons, equipment, spells, monsters, quests and server info.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	if cfg.ValidateContent {
		if problems := validation.ValidateContentDir(cfg.ContentDir, cfg.SchemaDir); problems > 0 {
			slog.Warn("Content validation reported problems", "count", problems)
		}
	}

	var store *catalog.Store
	if cfg.CacheEnabled {
		store, err = catalog.NewStoreWithCache(cfg.ContentDir, cfg.CacheSize, cfg.CacheTTL)
		if err != nil {
			slog.Error("Failed to initialize catalog cache", "error", err)
			os.Exit(1)
		}
	} else {
		store = catalog.NewStore(cfg.ContentDir)
	}
	defer store.Close()

	catalogService := catalog.NewService(store)
	searchService := search.NewService(catalogService, cfg.MaxSearchResults, cfg.SnippetLength)

	srv := server.NewServer(cfg, catalogService, searchService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
