// Chinookd - Music Store Catalog and Sales Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chinookd

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTracks(t *testing.T) {
	t.Parallel()

	router := setupTestRouter(t)

	t.Run("default paging", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var rows []map[string]interface{}
		decodeBody(t, rec.Body.Bytes(), &rows)
		if len(rows) != 6 {
			t.Errorf("len(rows) = %d, want 6", len(rows))
		}
		if rows[0]["TrackId"] != float64(1) {
			t.Errorf("rows[0].TrackId = %v, want 1", rows[0]["TrackId"])
		}
	})

	t.Run("page and per_page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks?page=2&per_page=1", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var rows []map[string]interface{}
		decodeBody(t, rec.Body.Bytes(), &rows)
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
		if rows[0]["TrackId"] != float64(3) {
			t.Errorf("TrackId = %v, want 3", rows[0]["TrackId"])
		}
		if rows[0]["Name"] != "Fast As a Shark" {
			t.Errorf("Name = %v, want Fast As a Shark", rows[0]["Name"])
		}
	})

	t.Run("page beyond range returns empty array", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks?page=50&per_page=10", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if got := rec.Body.String(); got != "[]" {
			t.Errorf("body = %q, want []", got)
		}
	})

	t.Run("non-integer page is a bad request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks?page=abc", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("nullable composer serializes as null", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks?page=1&per_page=1", nil))

		var rows []map[string]interface{}
		decodeBody(t, rec.Body.Bytes(), &rows)
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
		if v, present := rows[0]["Composer"]; !present || v != nil {
			t.Errorf("Composer = %v (present=%v), want explicit null", v, present)
		}
	})
}

func TestTracksByComposer(t *testing.T) {
	t.Parallel()

	router := setupTestRouter(t)

	t.Run("matching composer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/composers?composer_name=Toby+Smith", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var names []string
		decodeBody(t, rec.Body.Bytes(), &names)
		want := []string{"Deeper Underground", "The Kids"}
		if len(names) != len(want) {
			t.Fatalf("names = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
			}
		}
	})

	t.Run("empty composer name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/composers?composer_name=", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		want := `{"detail":{"error":"No tracks by this composer."}}`
		if got := rec.Body.String(); got != want {
			t.Errorf("body = %s, want %s", got, want)
		}
	})

	t.Run("unknown composer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/composers?composer_name=Nobody", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		want := `{"detail":{"error":"No tracks by this composer."}}`
		if got := rec.Body.String(); got != want {
			t.Errorf("body = %s, want %s", got, want)
		}
	})
}
