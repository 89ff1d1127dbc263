// Bookrec - Book Recommendation Service
// Copyright 2026 Bookrec Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bookrec/bookrec

// Package main is the entry point for the Bookrec server.
//
// Bookrec serves book recommendations from precomputed collaborative
// filtering artifacts. All data is loaded into memory once at startup;
// request handling never touches disk.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: load settings from env vars and config files (Koanf v2)
//  2. Catalog: load the four model artifacts (title index, similarity
//     matrix, curated top set, full metadata catalog)
//  3. Recommendation engine over the loaded catalog
//  4. HTTP server: Chi router with CORS, rate limiting, Prometheus
//     metrics, and optional static frontend serving
//  5. Supervisor tree: the HTTP server runs under suture supervision
//
// A failed catalog load is not fatal. The server starts in a not-ready
// state and the book endpoints report the condition in their payloads,
// matching the behavior the frontend expects.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, TITLE_INDEX_PATH, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests to
// complete before exiting.
//
// # Example Usage
//
//	export TITLE_INDEX_PATH=data/title_index.json
//	export SIMILARITY_PATH=data/similarity.json
//	export TOP_BOOKS_PATH=data/top_books.json
//	export FULL_BOOKS_PATH=data/books.json.gz
//	./bookrec
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookrec/bookrec/internal/api"
	"github.com/bookrec/bookrec/internal/catalog"
	"github.com/bookrec/bookrec/internal/config"
	"github.com/bookrec/bookrec/internal/logging"
	"github.com/bookrec/bookrec/internal/metrics"
	"github.com/bookrec/bookrec/internal/recommend"
	"github.com/bookrec/bookrec/internal/supervisor"
	"github.com/bookrec/bookrec/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Bookrec with supervisor tree")
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("title_index", cfg.Data.TitleIndexPath).
		Str("similarity", cfg.Data.SimilarityPath).
		Str("top_books", cfg.Data.TopBooksPath).
		Str("full_books", cfg.Data.FullBooksPath).
		Msg("Configuration loaded")

	// Load the catalog artifacts. A failed load yields the Empty
	// sentinel and the server starts in a not-ready state.
	cat := catalog.Load(&cfg.Data)
	metrics.SetCatalogState(cat.Ready(), len(cat.TitleIndex), len(cat.TopOrder))

	engine := recommend.NewEngine(cat, cfg.Recommend.TopK, logging.Logger())

	handler := api.NewHandler(engine, cat, cfg)
	chiMw := api.NewChiMiddlewareFromConfig(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, chiMw, cfg.Server.StaticDir)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
