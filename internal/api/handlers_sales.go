// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
)

// Sales returns aggregate sales statistics for one category.
//
// Method: GET
// Path: /sales?category=customers|genres
//
// Categories:
//   - customers: per-customer invoice totals (2-decimal rounded Sum),
//     ordered by Sum descending, ties by ascending customer id
//   - genres: per-genre sold quantities, ordered by Sum descending,
//     ties by ascending genre name
//
// Response:
//   - 200: array of aggregate objects
//   - 404: unknown category
func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("category") {
	case "customers":
		rows, err := h.db.CustomerSales(r.Context())
		if err != nil {
			respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
			return
		}
		respondJSON(w, http.StatusOK, rows)

	case "genres":
		rows, err := h.db.GenreSales(r.Context())
		if err != nil {
			respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
			return
		}
		respondJSON(w, http.StatusOK, rows)

	default:
		respondDetailError(w, r, http.StatusNotFound, "Wrong category name.", nil)
	}
}
