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
)

// UpdateCustomer applies a partial update to a customer's contact fields.
//
// Method: PUT
// Path: /customers/{customer_id}
// Body: optional string fields company, address, city, state, country,
// postalcode, fax. Absent and null fields are left untouched; the verb
// is PUT but the semantics are PATCH-like.
//
// Each supplied field is written as its own statement, in a fixed field
// order, and the full current row is re-fetched for the response.
//
// Response:
//   - 200: full customer object after the update
//   - 400: non-integer customer_id or undecodable body
//   - 404: customer does not exist
func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.Atoi(chi.URLParam(r, "customer_id"))
	if err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "customer_id must be an integer.", err)
		return
	}

	var req models.UpdateCustomerRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondDetailError(w, r, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	exists, err := h.db.CustomerExists(r.Context(), customerID)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}
	if !exists {
		respondDetailError(w, r, http.StatusNotFound, "Customer with that id does not exist.", nil)
		return
	}

	if err := h.db.UpdateCustomerFields(r.Context(), customerID, req.Updates()); err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	row, err := h.db.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondDetailError(w, r, http.StatusInternalServerError, "Database error.", err)
		return
	}

	respondJSON(w, http.StatusOK, row)
}
