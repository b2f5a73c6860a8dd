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

// ArtistExists reports whether an artist with the given id exists.
func (db *DB) ArtistExists(ctx context.Context, artistID int) (bool, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `SELECT ArtistId FROM artists WHERE ArtistId = ?`

	start := time.Now()
	var id int
	err := db.conn.GetContext(ctx, &id, query, artistID)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "artists", time.Since(start), nil)
		return false, nil
	}
	metrics.RecordDBQuery("select", "artists", time.Since(start), err)
	if err != nil {
		return false, fmt.Errorf("failed to look up artist %d: %w", artistID, err)
	}
	return true, nil
}

// InsertAlbum creates a new album row and returns the store-assigned
// AlbumId from the just-completed insert.
func (db *DB) InsertAlbum(ctx context.Context, title string, artistID int) (int64, error) {
	query := `INSERT INTO albums (Title, ArtistId) VALUES (?, ?)`
	return db.exec(ctx, "insert", "albums", query, title, artistID)
}

// GetAlbum returns the album with the given id as a column mapping, or
// nil when no such album exists. The caller decides how a nil row maps
// to HTTP.
func (db *DB) GetAlbum(ctx context.Context, albumID int) (models.Row, error) {
	query := `SELECT * FROM albums WHERE AlbumId = ?`
	return db.queryRow(ctx, "select", "albums", query, albumID)
}
