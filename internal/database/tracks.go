// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package database

import (
	"context"

	"github.com/tomtom215/chinookd/internal/models"
)

// ListTracks returns one page of tracks ordered by ascending TrackId.
// page and perPage are passed through to LIMIT/OFFSET unvalidated;
// SQLite treats a negative LIMIT as "no limit" and a negative OFFSET
// as zero. An out-of-range page yields an empty slice, not an error.
func (db *DB) ListTracks(ctx context.Context, page, perPage int) ([]models.Row, error) {
	query := `
		SELECT *
		FROM tracks
		ORDER BY TrackId
		LIMIT ? OFFSET ?
	`
	return db.queryRows(ctx, "select", "tracks", query, perPage, perPage*page)
}

// TrackNamesByComposer returns the names of all tracks whose Composer
// column equals composer exactly (no normalization or case folding),
// ordered alphabetically by name.
func (db *DB) TrackNamesByComposer(ctx context.Context, composer string) ([]string, error) {
	query := `
		SELECT Name
		FROM tracks
		WHERE Composer = ?
		ORDER BY Name
	`
	return db.queryStrings(ctx, "select", "tracks", query, composer)
}
