// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"time"

	"github.com/tomtom215/chinookd/internal/config"
	"github.com/tomtom215/chinookd/internal/database"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files by resource:
//   - handlers_tracks.go: track listing and composer search
//   - handlers_albums.go: album creation and lookup
//   - handlers_customers.go: customer partial update
//   - handlers_sales.go: aggregate sales statistics
//   - handlers_health.go: liveness endpoint
type Handler struct {
	db        *database.DB
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Dependencies:
//   - db: the shared store connection, owned by main for the process lifetime
//   - cfg: application configuration
func NewHandler(db *database.DB, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		config:    cfg,
		startTime: time.Now(),
	}
}
