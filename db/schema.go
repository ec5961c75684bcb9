// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported dialects.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case DialectSQLite:
		ddl = schemaSQLite
	case DialectPostgres:
		ddl = schemaPostgres
	default:
		return fmt.Errorf("unknown database dialect %q", dialect)
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are written from Go as ISO-8601 text so both dialects store
// identical values.

const schemaSQLite = `
-- Daily step counts, one row per (device, date)
CREATE TABLE IF NOT EXISTS daily_steps (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id TEXT NOT NULL,
    date TEXT NOT NULL,
    steps INTEGER DEFAULT 0,
    goal INTEGER DEFAULT 8000,
    created_at TEXT,
    UNIQUE(device_id, date)
);

CREATE INDEX IF NOT EXISTS idx_daily_steps_device_date ON daily_steps(device_id, date);

-- Per-device settings profile
CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    device_id TEXT UNIQUE NOT NULL,
    goal INTEGER DEFAULT 8000,
    stride INTEGER DEFAULT 70,
    weight INTEGER DEFAULT 60,
    sensitivity INTEGER DEFAULT 12,
    updated_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_settings_device ON settings(device_id);
`

const schemaPostgres = `
-- Daily step counts, one row per (device, date)
CREATE TABLE IF NOT EXISTS daily_steps (
    id BIGSERIAL PRIMARY KEY,
    device_id TEXT NOT NULL,
    date TEXT NOT NULL,
    steps INTEGER DEFAULT 0,
    goal INTEGER DEFAULT 8000,
    created_at TEXT,
    UNIQUE(device_id, date)
);

CREATE INDEX IF NOT EXISTS idx_daily_steps_device_date ON daily_steps(device_id, date);

-- Per-device settings profile
CREATE TABLE IF NOT EXISTS settings (
    id BIGSERIAL PRIMARY KEY,
    device_id TEXT UNIQUE NOT NULL,
    goal INTEGER DEFAULT 8000,
    stride INTEGER DEFAULT 70,
    weight INTEGER DEFAULT 60,
    sensitivity INTEGER DEFAULT 12,
    updated_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_settings_device ON settings(device_id);
`
