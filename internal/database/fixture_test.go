// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package database

import (
	"testing"
	"time"

	"github.com/tomtom215/chinookd/internal/config"
)

// testSchema is a Chinook-shaped subset of the externally owned schema,
// used only to build in-memory fixtures for tests.
const testSchema = `
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
`

// testSeed populates the fixture. The rankings are deliberate:
// customer 6 has the highest invoice sum (49.62), customers 2 and 3 tie
// on 12.00 to exercise the id tie-break; Rock has the highest sold
// quantity, Latin and Jazz tie on 3 to exercise the name tie-break.
const testSeed = `
INSERT INTO artists (ArtistId, Name) VALUES
	(1, 'Accept'),
	(2, 'Jamiroquai'),
	(3, 'Aerosmith');

INSERT INTO genres (GenreId, Name) VALUES
	(1, 'Rock'),
	(2, 'Latin'),
	(3, 'Jazz');

INSERT INTO albums (AlbumId, Title, ArtistId) VALUES
	(1, 'Restless and Wild', 1),
	(2, 'Synkronized', 2);

INSERT INTO tracks (TrackId, Name, AlbumId, GenreId, Composer, Milliseconds, UnitPrice) VALUES
	(1, 'For Those About To Rock', 1, 1, 'Angus Young', 343719, 0.99),
	(2, 'Balls to the Wall', 1, 1, NULL, 342562, 0.99),
	(3, 'Fast As a Shark', 1, 1, 'F. Baltes', 230619, 0.99),
	(4, 'Restless and Wild', 1, 1, 'F. Baltes', 252051, 0.99),
	(5, 'Princess of the Dawn', 1, 1, 'Deaffy', 375418, 0.99),
	(6, 'Deeper Underground', 2, 2, 'Toby Smith', 284512, 0.99),
	(7, 'The Kids', 2, 2, 'Toby Smith', 305962, 0.99),
	(8, 'Canned Heat', 2, 3, 'Jay Kay', 331862, 0.99);

INSERT INTO customers (CustomerId, FirstName, LastName, Company, Address, City, State, Country, PostalCode, Fax, Email, Phone) VALUES
	(1, 'Luis', 'Goncalves', 'Embraer', 'Av. Brigadeiro', 'Sao Jose', 'SP', 'Brazil', '12227-000', '+55 (12) 3923-5566', 'luisg@embraer.com.br', '+55 (12) 3923-5555'),
	(2, 'Leonie', 'Koehler', NULL, 'Theodor-Heuss', 'Stuttgart', NULL, 'Germany', '70174', NULL, 'leonekohler@surfeu.de', '+49 0711 2842222'),
	(3, 'Francois', 'Tremblay', NULL, '1498 rue Belanger', 'Montreal', 'QC', 'Canada', 'H2G 1A7', NULL, 'ftremblay@gmail.com', '+1 (514) 721-4711'),
	(4, 'Bjorn', 'Hansen', NULL, 'Ullevalsveien 14', 'Oslo', NULL, 'Norway', '0171', NULL, 'bjorn.hansen@yahoo.no', '+47 22 44 22 22'),
	(5, 'Frantisek', 'Wichterlova', 'JetBrains s.r.o.', 'Klanova 9/506', 'Prague', NULL, 'Czech Republic', '14700', '+420 2 4172 5555', 'frantisekw@jetbrains.com', '+420 2 4172 5555'),
	(6, 'Helena', 'Holy', NULL, 'Rilska 3174/6', 'Prague', NULL, 'Czech Republic', '14300', NULL, 'hholy@gmail.com', '+420 2 4177 0449');

INSERT INTO invoices (InvoiceId, CustomerId, Total) VALUES
	(1, 6, 30.00),
	(2, 6, 19.62),
	(3, 5, 21.62),
	(4, 1, 10.00),
	(5, 2, 12.00),
	(6, 3, 12.00),
	(7, 4, 5.94);

INSERT INTO invoice_items (InvoiceLineId, InvoiceId, TrackId, UnitPrice, Quantity) VALUES
	(1, 1, 1, 0.99, 3),
	(2, 1, 2, 0.99, 2),
	(3, 2, 3, 0.99, 2),
	(4, 3, 4, 0.99, 1),
	(5, 4, 6, 0.99, 2),
	(6, 5, 7, 0.99, 1),
	(7, 6, 8, 0.99, 2),
	(8, 7, 8, 0.99, 1);
`

// setupTestDB opens an in-memory SQLite database seeded with the
// Chinook-shaped fixture. The single-connection cap keeps the in-memory
// database alive for the whole test.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(&config.DatabaseConfig{
		Path:         ":memory:",
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	if _, err := db.conn.Exec(testSchema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}
	if _, err := db.conn.Exec(testSeed); err != nil {
		t.Fatalf("failed to seed test data: %v", err)
	}
	return db
}
