// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package database

import (
	"context"

	"github.com/tomtom215/chinookd/internal/models"
)

// CustomerSales returns per-customer invoice totals: customer id, email
// and phone with the sum of invoice totals rounded to 2 decimal places
// as Sum, ordered by Sum descending with ties broken by ascending
// customer id.
func (db *DB) CustomerSales(ctx context.Context) ([]models.Row, error) {
	query := `
		SELECT invoices.CustomerId, Email, Phone, ROUND(SUM(Total), 2) AS Sum
		FROM invoices
		JOIN customers ON invoices.CustomerId = customers.CustomerId
		GROUP BY invoices.CustomerId
		ORDER BY Sum DESC, invoices.CustomerId
	`
	return db.queryRows(ctx, "select", "invoices", query)
}

// GenreSales returns per-genre sold quantities: genre name with the sum
// of invoice line-item quantities as Sum, ordered by Sum descending
// with ties broken by ascending genre name.
func (db *DB) GenreSales(ctx context.Context) ([]models.Row, error) {
	query := `
		SELECT genres.Name, SUM(Quantity) AS Sum
		FROM invoice_items
		JOIN tracks ON invoice_items.TrackId = tracks.TrackId
		JOIN genres ON tracks.GenreId = genres.GenreId
		GROUP BY tracks.GenreId
		ORDER BY Sum DESC, genres.Name
	`
	return db.queryRows(ctx, "select", "invoice_items", query)
}
