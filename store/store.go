// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ymiyake/manpokei/models"
)

// Store is the single shared accessor for the settings and daily_steps
// tables. All handlers go through one Store instance so the two tables
// are only ever reached via one connection pool and one set of queries.
type Store struct {
	db      *sql.DB
	dialect string
}

func New(db *sql.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect}
}

// rebind converts ? placeholders to $1..$N for the postgres driver.
// Queries in this package are written with ? so both dialects share
// one set of SQL constants.
func (s *Store) rebind(query string) string {
	if s.dialect != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

// GetSettings returns the stored profile for a device, or the documented
// defaults when the device has never saved settings. A missing row is not
// an error.
func (s *Store) GetSettings(deviceID string) (models.Settings, error) {
	var st models.Settings
	err := s.db.QueryRow(s.rebind(`
		SELECT goal, stride, weight, sensitivity FROM settings WHERE device_id = ?
	`), deviceID).Scan(&st.Goal, &st.Stride, &st.Weight, &st.Sensitivity)

	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to query settings: %w", err)
	}
	return st, nil
}

// UpsertSettings replaces all profile fields for a device, creating the
// row on first write. Last write wins; there is no versioning.
func (s *Store) UpsertSettings(deviceID string, st models.Settings) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO settings (device_id, goal, stride, weight, sensitivity, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(device_id) DO UPDATE SET
			goal = excluded.goal,
			stride = excluded.stride,
			weight = excluded.weight,
			sensitivity = excluded.sensitivity,
			updated_at = excluded.updated_at
	`), deviceID, st.Goal, st.Stride, st.Weight, st.Sensitivity, now)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

// GetDailySteps returns the record for one (device, date) key, or the
// zero-steps default when no write has happened for that day.
func (s *Store) GetDailySteps(deviceID, date string) (models.DailySteps, error) {
	var rec models.DailySteps
	err := s.db.QueryRow(s.rebind(`
		SELECT steps, goal FROM daily_steps WHERE device_id = ? AND date = ?
	`), deviceID, date).Scan(&rec.Steps, &rec.Goal)

	if err == sql.ErrNoRows {
		return models.DefaultDailySteps(), nil
	}
	if err != nil {
		return models.DailySteps{}, fmt.Errorf("failed to query daily steps: %w", err)
	}
	return rec, nil
}

// UpsertDailySteps replaces steps and goal for one (device, date) key.
// A full replace, not an increment; the store enforces no monotonicity.
func (s *Store) UpsertDailySteps(deviceID, date string, rec models.DailySteps) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(s.rebind(`
		INSERT INTO daily_steps (device_id, date, steps, goal, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(device_id, date) DO UPDATE SET
			steps = excluded.steps,
			goal = excluded.goal
	`), deviceID, date, rec.Steps, rec.Goal, now)
	if err != nil {
		return fmt.Errorf("failed to upsert daily steps: %w", err)
	}
	return nil
}

// History returns the device's records with date >= today - days,
// descending by date. The cutoff is computed here rather than in SQL so
// sqlite and postgres behave identically.
func (s *Store) History(deviceID string, days int) ([]models.DailyStepRecord, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(models.DateLayout)

	rows, err := s.db.Query(s.rebind(`
		SELECT date, steps, goal
		FROM daily_steps
		WHERE device_id = ? AND date >= ?
		ORDER BY date DESC
	`), deviceID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	history := []models.DailyStepRecord{}
	for rows.Next() {
		var rec models.DailyStepRecord
		if err := rows.Scan(&rec.Date, &rec.Steps, &rec.Goal); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	return history, nil
}
