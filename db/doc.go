// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - daily_steps: one row per (device_id, date), holding steps and the goal
    snapshot at the time of the last write
  - settings: one row per device_id, holding goal, stride, weight, and
    sensor sensitivity

# Dialects

Both SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq) are supported.
The two DDL variants differ only in the autoincrement primary key; all
timestamps are written from Go as ISO-8601 text so the dialects store
identical values.

# Keys

	daily_steps UNIQUE(device_id, date)
	settings    UNIQUE(device_id)

Uniqueness backs the upsert (insert-or-replace) write path; there are no
foreign keys between the two tables.
*/
package db
