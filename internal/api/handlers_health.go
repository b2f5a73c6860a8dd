// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/chinookd/internal/models"
)

// Health reports process liveness and store reachability.
//
// Method: GET
// Path: /healthz
//
// Response:
//   - 200: {"status":"ok","uptime":...}
//   - 503: the store did not answer a ping
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondDetailError(w, r, http.StatusServiceUnavailable, "Database unavailable.", err)
		return
	}

	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startTime).Round(time.Second).String(),
	})
}
