// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/chinookd/internal/metrics"
	"github.com/tomtom215/chinookd/internal/models"
)

// customerColumns is the closed set of columns UpdateCustomerFields may
// interpolate into SQL text. Anything outside this set is rejected, so
// client-supplied keys can never reach the statement structurally.
var customerColumns = map[string]bool{
	"Company":    true,
	"Address":    true,
	"City":       true,
	"State":      true,
	"Country":    true,
	"PostalCode": true,
	"Fax":        true,
}

// CustomerExists reports whether a customer with the given id exists.
func (db *DB) CustomerExists(ctx context.Context, customerID int) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT CustomerId FROM customers WHERE CustomerId = ?`

	start := time.Now()
	var id int
	err := db.conn.GetContext(ctx, &id, query, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "customers", time.Since(start), nil)
		return false, nil
	}
	metrics.RecordDBQuery("select", "customers", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to look up customer %d: %w", customerID, err)
	}
	return true, nil
}

// UpdateCustomerFields applies the given field updates one statement at
// a time, in order. Each statement is committed independently, so a
// failure partway leaves the earlier fields written; this matches the
// service's original per-field write semantics.
//
// Only column names from the fixed customerColumns set are accepted;
// values are always bound parameters.
func (db *DB) UpdateCustomerFields(ctx context.Context, customerID int, updates []models.FieldUpdate) error {
	for _, u := range updates {
		if !customerColumns[u.Column] {
			return fmt.Errorf("unrecognized customer column %q", u.Column)
		}
		query := fmt.Sprintf(`UPDATE customers SET %s = ? WHERE CustomerId = ?`, u.Column)
		if _, err := db.exec(ctx, "update", "customers", query, u.Value, customerID); err != nil {
			return fmt.Errorf("failed to update customer %d field %s: %w", customerID, u.Column, err)
		}
	}
	return nil
}

// GetCustomer returns the full current customer row as a column
// mapping, or nil when no such customer exists.
func (db *DB) GetCustomer(ctx context.Context, customerID int) (models.Row, error) {
	query := `SELECT * FROM customers WHERE CustomerId = ?`
	return db.queryRow(ctx, "select", "customers", query, customerID)
}
