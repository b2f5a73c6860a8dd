// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

// Package main is the entry point for the Chinookd server.
//
// Chinookd is a small HTTP/JSON service over a pre-existing SQLite
// music-store dataset (the Chinook schema). It serves the track
// catalog, album creation and lookup, customer contact updates, and
// aggregate sales statistics.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, config.yaml,
//     environment variables)
//  2. Logging: zerolog global logger from the logging config
//  3. Database: one SQLite connection held for the process lifetime
//  4. HTTP Server: Chi router with request ID, CORS, rate limiting and
//     Prometheus middleware
//
// # Configuration
//
// Common environment variables:
//   - CHINOOK_DB_PATH: SQLite database file (default: chinook.db)
//   - HTTP_HOST / HTTP_PORT: listen address (default: 0.0.0.0:8000)
//   - LOG_LEVEL / LOG_FORMAT: logging (default: info / json)
//   - RATE_LIMIT_DISABLED=true: turn off IP rate limiting
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, waits up to 10s for in-flight requests, then
// closes the database connection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/chinookd/internal/api"
	"github.com/tomtom215/chinookd/internal/config"
	"github.com/tomtom215/chinookd/internal/database"
	"github.com/tomtom215/chinookd/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config (and its logging section) is unavailable.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	db, err := database.Open(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(&cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Database close error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
