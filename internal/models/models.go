// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

// Package models defines request and response types for the Chinookd API.
//
// Catalog rows are returned as mappings rather than fixed structs: the
// schema is externally owned and its columns are passed through to
// clients unchanged, so the service does not hardcode a column list for
// read paths.
package models

// Row is a full-row mapping of column name to value, mirroring whatever
// the store returns. JSON field names are the store's column names
// (TrackId, Name, Composer, ...).
type Row map[string]interface{}

// CreateAlbumRequest is the POST /albums body. Both fields are required
// but only presence is checked: pointers distinguish a missing key from
// a zero value, so an empty title or artist id 0 is still a supplied
// value.
type CreateAlbumRequest struct {
	Title    *string `json:"title" validate:"required"`
	ArtistID *int    `json:"artist_id" validate:"required"`
}

// AlbumCreated is the POST /albums success response. The field names
// match the store's column casing.
type AlbumCreated struct {
	AlbumID  int64  `json:"AlbumId"`
	Title    string `json:"Title"`
	ArtistID int    `json:"ArtistId"`
}

// UpdateCustomerRequest is the PUT /customers/{customer_id} body. Every
// field is optional; nil fields are left untouched on the stored row
// (partial-update semantics, even though the verb is PUT).
type UpdateCustomerRequest struct {
	Company    *string `json:"company"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postalcode"`
	Fax        *string `json:"fax"`
}

// FieldUpdate pairs a customers column with its new value.
type FieldUpdate struct {
	Column string
	Value  string
}

// Updates returns the supplied (non-nil) fields in a fixed order. The
// column names form the closed set allowed into UPDATE statements;
// client-supplied keys never reach SQL text.
func (r *UpdateCustomerRequest) Updates() []FieldUpdate {
	fields := []struct {
		column string
		value  *string
	}{
		{"Company", r.Company},
		{"Address", r.Address},
		{"City", r.City},
		{"State", r.State},
		{"Country", r.Country},
		{"PostalCode", r.PostalCode},
		{"Fax", r.Fax},
	}

	updates := make([]FieldUpdate, 0, len(fields))
	for _, f := range fields {
		if f.value != nil {
			updates = append(updates, FieldUpdate{Column: f.column, Value: *f.value})
		}
	}
	return updates
}

// ErrorDetail carries the error message inside the detail envelope.
type ErrorDetail struct {
	Error string `json:"error"`
}

// ErrorResponse is the error body shape for every failure response:
// {"detail":{"error":"..."}}.
type ErrorResponse struct {
	Detail ErrorDetail `json:"detail"`
}

// NewErrorResponse builds an ErrorResponse with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Detail: ErrorDetail{Error: message}}
}

// HealthResponse is the GET /healthz body.
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
