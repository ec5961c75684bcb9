// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ymiyake/manpokei/db"
	"github.com/ymiyake/manpokei/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// database/sql would otherwise open a second connection and see a
	// different empty in-memory database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// NewTestStore returns a store backed by a fresh in-memory database
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t), db.DialectSQLite)
}

// SeedSettings inserts a settings row directly
func SeedSettings(t *testing.T, conn *sql.DB, deviceID string, goal, stride, weight, sensitivity int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO settings (device_id, goal, stride, weight, sensitivity, updated_at)
		VALUES (?, ?, ?, ?, ?, '2025-01-01T00:00:00Z')
	`, deviceID, goal, stride, weight, sensitivity)
	if err != nil {
		t.Fatalf("Failed to seed settings: %v", err)
	}
}

// SeedDailySteps inserts a daily_steps row directly
func SeedDailySteps(t *testing.T, conn *sql.DB, deviceID, date string, steps, goal int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO daily_steps (device_id, date, steps, goal, created_at)
		VALUES (?, ?, ?, ?, '2025-01-01T00:00:00Z')
	`, deviceID, date, steps, goal)
	if err != nil {
		t.Fatalf("Failed to seed daily steps: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
