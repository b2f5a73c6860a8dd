// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/chinookd/internal/logging"
	"github.com/tomtom215/chinookd/internal/models"
)

// respondJSON sends v as a JSON response body. The body mirrors v
// directly; there is no envelope, so row mappings and arrays reach the
// client in the store's own shape.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondDetailError sends the error envelope {"detail":{"error":msg}}
// with the given status.
func respondDetailError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Int("status", status).
			Str("path", r.URL.Path).
			Err(err).
			Msg("API error")
	}
	respondJSON(w, status, models.NewErrorResponse(message))
}

// getIntParam extracts an integer query parameter, falling back to the
// default when the parameter is absent. A present but non-integer value
// is reported as a malformed request.
func getIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}

// decodeJSONBody decodes the request body into v.
func decodeJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
