// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
)

// Tracks returns one page of the track catalog.
//
// Method: GET
// Path: /tracks?page=N&per_page=M
//
// page defaults to 0 and per_page to the configured default (10). Sign
// and range are deliberately not validated; negative values pass
// through to the store's LIMIT/OFFSET. A page beyond the data range is
// a successful empty array, never a 404.
//
// Response:
//   - 200: array of track objects ordered by ascending TrackId
//   - 400: non-integer page or per_page
func (h *Handler) Tracks(w http.ResponseWriter, r *http.Request) {
	page, err := getIntParam(r, "page", 0)
	if err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "page must be an integer.", err)
		return
	}
	perPage, err := getIntParam(r, "per_page", h.config.API.DefaultPerPage)
	if err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "per_page must be an integer.", err)
		return
	}

	rows, err := h.db.ListTracks(r.Context(), page, perPage)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// TracksByComposer returns the names of all tracks by one composer.
//
// Method: GET
// Path: /tracks/composers?composer_name=NAME
//
// The match is exact, with no normalization; an empty composer_name is
// valid input that typically matches nothing.
//
// Response:
//   - 200: alphabetically ordered array of plain track name strings
//   - 404: no tracks by that composer
func (h *Handler) TracksByComposer(w http.ResponseWriter, r *http.Request) {
	composer := r.URL.Query().Get("composer_name")

	names, err := h.db.TrackNamesByComposer(r.Context(), composer)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	if len(names) == 0 {
		respondDetailError(w, r, http.StatusNotFound, "No tracks by this composer.", nil)
		return
	}

	respondJSON(w, http.StatusOK, names)
}
