// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/chinookd/internal/models"
	"github.com/tomtom215/chinookd/internal/validation"
)

// CreateAlbum creates a new album for an existing artist.
//
// Method: POST
// Path: /albums
// Body: {"title": string, "artist_id": int} — both required
//
// Response:
//   - 201: {"AlbumId": <store-assigned id>, "Title": ..., "ArtistId": ...}
//   - 400: undecodable body or missing required fields
//   - 404: artist_id does not reference an existing artist
func (h *Handler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlbumRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "Invalid request body.", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondDetailError(w, r, http.StatusBadRequest, verr.Error(), nil)
		return
	}

	exists, err := h.db.ArtistExists(r.Context(), *req.ArtistID)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}
	if !exists {
		respondDetailError(w, r, http.StatusNotFound, "Unknown artist.", nil)
		return
	}

	albumID, err := h.db.InsertAlbum(r.Context(), *req.Title, *req.ArtistID)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	respondJSON(w, http.StatusCreated, models.AlbumCreated{
		AlbumID:  albumID,
		Title:    *req.Title,
		ArtistID: *req.ArtistID,
	})
}

// GetAlbum returns one album by id.
//
// Method: GET
// Path: /albums/{album_id}
//
// A missing album is a 200 with a null body, not a 404. Clients depend
// on this behavior, so it stays even though the other missing-entity
// cases return 404.
//
// Response:
//   - 200: album object, or null when no such album exists
//   - 400: non-integer album_id
func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := strconv.Atoi(chi.URLParam(r, "album_id"))
	if err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "album_id must be an integer.", err)
		return
	}

	row, err := h.db.GetAlbum(r.Context(), albumID)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	respondJSON(w, http.StatusOK, row)
}
