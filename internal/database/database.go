// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

// Package database is the data store adapter for the Chinook SQLite
// dataset. It owns one connection for the process lifetime: opened and
// pinged at startup, closed at shutdown, no reconnection logic. The
// schema is externally owned; this package only consumes it.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tomtom215/chinookd/internal/config"
	"github.com/tomtom215/chinookd/internal/logging"
	"github.com/tomtom215/chinookd/internal/metrics"
	"github.com/tomtom215/chinookd/internal/models"
)

// DB wraps the SQLite connection and provides data access methods.
//
// Two row-shaping modes are exposed to query methods:
//   - queryRows / queryRow: full-row mappings (column name -> value)
//   - queryStrings: single-column scalar extraction
//
// Values are always bound parameters. The one structural substitution
// (customer column names, customers.go) draws from a fixed closed set.
type DB struct {
	conn         *sqlx.DB
	queryTimeout time.Duration
}

// Open opens the SQLite database and verifies the connection with a
// ping. The pool is capped at a single connection; every handler
// serializes through it for the life of the process.
func Open(cfg *config.DatabaseConfig) (*DB, error) {
	conn, err := sqlx.Connect("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	timeout := cfg.QueryTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	logging.Info().Str("path", cfg.Path).Msg("Database connection established")

	return &DB{
		conn:         conn,
		queryTimeout: timeout,
	}, nil
}

// Close releases the database connection. Called once at shutdown.
func (db *DB) Close() error {
	logging.Info().Msg("Closing database connection")
	return db.conn.Close()
}

// Conn exposes the underlying connection. Used by tests to build
// fixtures against the externally owned schema.
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// Ping verifies the connection is still alive.
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	return db.conn.PingContext(ctx)
}

// ensureContext applies the configured query timeout when the caller
// supplies no deadline of its own.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), db.queryTimeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, db.queryTimeout)
	}
	return ctx, func() {}
}

// queryRows executes a query and returns every row as a column mapping.
// The result is never nil; an empty result is an empty slice so it
// serializes as [] rather than null.
func (db *DB) queryRows(ctx context.Context, operation, table, query string, args ...interface{}) ([]models.Row, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryxContext(ctx, query, args...)
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]models.Row, 0)
	for rows.Next() {
		row := make(models.Row)
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out = append(out, normalizeRow(row))
	}
	return out, rows.Err()
}

// queryRow executes a query expected to return at most one row and
// returns it as a column mapping, or nil when there is no row.
func (db *DB) queryRow(ctx context.Context, operation, table, query string, args ...interface{}) (models.Row, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryxContext(ctx, query, args...)
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	row := make(models.Row)
	if err := rows.MapScan(row); err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
	}
	return normalizeRow(row), nil
}

// queryStrings executes a query projecting a single text column and
// returns the values as a flat, ordered list.
func (db *DB) queryStrings(ctx context.Context, operation, table, query string, args ...interface{}) ([]string, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan %s value: %w", table, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// exec runs a mutating statement. SQLite commits each statement before
// Exec returns, so a success here is a durable write.
func (db *DB) exec(ctx context.Context, operation, table, query string, args ...interface{}) (int64, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	res, err := db.conn.ExecContext(ctx, query, args...)
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("failed to exec on %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read last insert id on %s: %w", table, err)
	}
	return id, nil
}

// normalizeRow converts driver []byte values to strings so row mappings
// serialize as JSON text rather than base64.
func normalizeRow(row models.Row) models.Row {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
	return row
}
