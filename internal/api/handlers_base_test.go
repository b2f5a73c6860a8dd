// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/chinookd/internal/config"
	"github.com/tomtom215/chinookd/internal/database"
)

// testFixture is a Chinook-shaped schema plus deterministic rows. The
// rankings are deliberate: customer 6 tops the invoice sums and Rock
// tops the sold quantities, matching the reference dataset's ordering.
const testFixture = `
CREATE TABLE artists (
	ArtistId INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT
);
CREATE TABLE albums (
	AlbumId INTEGER PRIMARY KEY AUTOINCREMENT,
	Title TEXT NOT NULL,
	ArtistId INTEGER NOT NULL REFERENCES artists(ArtistId)
);
CREATE TABLE genres (
	GenreId INTEGER PRIMARY KEY,
	Name TEXT
);
CREATE TABLE tracks (
	TrackId INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL,
	AlbumId INTEGER,
	GenreId INTEGER,
	Composer TEXT,
	Milliseconds INTEGER,
	UnitPrice REAL
);
CREATE TABLE customers (
	CustomerId INTEGER PRIMARY KEY,
	FirstName TEXT,
	LastName TEXT,
	Company TEXT,
	Address TEXT,
	City TEXT,
	State TEXT,
	Country TEXT,
	PostalCode TEXT,
	Fax TEXT,
	Email TEXT,
	Phone TEXT
);
CREATE TABLE invoices (
	InvoiceId INTEGER PRIMARY KEY,
	CustomerId INTEGER,
	Total REAL
);
CREATE TABLE invoice_items (
	InvoiceLineId INTEGER PRIMARY KEY,
	InvoiceId INTEGER,
	TrackId INTEGER,
	UnitPrice REAL,
	Quantity INTEGER
);

INSERT INTO artists (ArtistId, Name) VALUES
	(1, 'Accept'),
	(2, 'Jamiroquai'),
	(3, 'Aerosmith');

INSERT INTO genres (GenreId, Name) VALUES
	(1, 'Rock'),
	(2, 'Latin');

INSERT INTO albums (AlbumId, Title, ArtistId) VALUES
	(1, 'Restless and Wild', 1),
	(2, 'Synkronized', 2);

INSERT INTO tracks (TrackId, Name, AlbumId, GenreId, Composer, Milliseconds, UnitPrice) VALUES
	(1, 'For Those About To Rock', 1, 1, 'Angus Young', 343719, 0.99),
	(2, 'Balls to the Wall', 1, 1, NULL, 342562, 0.99),
	(3, 'Fast As a Shark', 1, 1, 'F. Baltes', 230619, 0.99),
	(4, 'Restless and Wild', 1, 1, 'F. Baltes', 252051, 0.99),
	(5, 'Deeper Underground', 2, 2, 'Toby Smith', 284512, 0.99),
	(6, 'The Kids', 2, 2, 'Toby Smith', 305962, 0.99);

INSERT INTO customers (CustomerId, FirstName, LastName, Company, Address, City, State, Country, PostalCode, Fax, Email, Phone) VALUES
	(1, 'Luis', 'Goncalves', 'Embraer', 'Av. Brigadeiro', 'Sao Jose', 'SP', 'Brazil', '12227-000', '+55 (12) 3923-5566', 'luisg@embraer.com.br', '+55 (12) 3923-5555'),
	(5, 'Frantisek', 'Wichterlova', 'JetBrains s.r.o.', 'Klanova 9/506', 'Prague', NULL, 'Czech Republic', '14700', '+420 2 4172 5555', 'frantisekw@jetbrains.com', '+420 2 4172 5555'),
	(6, 'Helena', 'Holy', NULL, 'Rilska 3174/6', 'Prague', NULL, 'Czech Republic', '14300', NULL, 'hholy@gmail.com', '+420 2 4177 0449');

INSERT INTO invoices (InvoiceId, CustomerId, Total) VALUES
	(1, 6, 30.00),
	(2, 6, 19.62),
	(3, 5, 21.62),
	(4, 1, 10.00);

INSERT INTO invoice_items (InvoiceLineId, InvoiceId, TrackId, UnitPrice, Quantity) VALUES
	(1, 1, 1, 0.99, 3),
	(2, 1, 2, 0.99, 2),
	(3, 2, 3, 0.99, 2),
	(4, 3, 5, 0.99, 2),
	(5, 4, 6, 0.99, 1);
`

// setupTestRouter builds the full routing stack over an in-memory
// seeded store, with rate limiting disabled so tests never trip it.
func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Path:         ":memory:",
			QueryTimeout: 5 * time.Second,
		},
		API: config.APIConfig{DefaultPerPage: 10},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if _, err := db.Conn().Exec(testFixture); err != nil {
		t.Fatalf("failed to seed test fixture: %v", err)
	}

	handler := NewHandler(db, cfg)
	return NewRouter(handler, NewChiMiddleware(&cfg.Security)).SetupChi()
}

// decodeBody unmarshals a JSON response body into v.
func decodeBody(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("failed to decode response body %q: %v", body, err)
	}
}
