// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the single shared accessor for persisted data.

Every handler reads and writes through one Store, so each route has
exactly one implementation of its queries and one connection pool.

# Operations

Each entity exposes a get and an upsert:

	st, err := st.GetSettings(deviceID)           // defaults if absent
	err = st.UpsertSettings(deviceID, settings)   // full replace

	rec, err := st.GetDailySteps(deviceID, date)  // {0, 8000} if absent
	err = st.UpsertDailySteps(deviceID, date, rec)

	rows, err := st.History(deviceID, days)       // descending by date

Gets never signal "not found": a missing row yields the documented
default values. Upserts are idempotent and total - they replace all
non-key fields unconditionally (last-write-wins, no versioning).

# Dialects

Queries are written once with ? placeholders; rebind converts them to
$N for postgres. Upserts use ON CONFLICT ... DO UPDATE SET with
excluded references, which both sqlite and postgres accept. History
cutoff dates and timestamps are computed in Go, not in SQL.
*/
package store
