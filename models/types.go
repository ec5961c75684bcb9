// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Defaults applied when a device has no stored profile or daily record.
const (
	DefaultGoal        = 8000
	DefaultStride      = 70
	DefaultWeight      = 60
	DefaultSensitivity = 12
)

// DateLayout is the calendar-date format used as part of the daily_steps key.
const DateLayout = "2006-01-02"

// Request types

type SaveSettingsRequest struct {
	DeviceID    string `json:"deviceId"`
	Goal        int    `json:"goal"`
	Stride      int    `json:"stride"`
	Weight      int    `json:"weight"`
	Sensitivity int    `json:"sensitivity"`
}

type SaveStepsRequest struct {
	DeviceID string `json:"deviceId"`
	Date     string `json:"date"`
	Steps    int    `json:"steps"`
	Goal     int    `json:"goal"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type HistoryResponse struct {
	History []DailyStepRecord `json:"history"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Domain types

// Settings is the per-device profile. At most one row per device id.
type Settings struct {
	Goal        int `json:"goal"`
	Stride      int `json:"stride"`
	Weight      int `json:"weight"`
	Sensitivity int `json:"sensitivity"`
}

// DefaultSettings returns the profile served for a device that has never
// saved settings.
func DefaultSettings() Settings {
	return Settings{
		Goal:        DefaultGoal,
		Stride:      DefaultStride,
		Weight:      DefaultWeight,
		Sensitivity: DefaultSensitivity,
	}
}

// DailySteps is the stored (steps, goal) pair for one (device, date) key.
type DailySteps struct {
	Steps int `json:"steps"`
	Goal  int `json:"goal"`
}

// DefaultDailySteps returns the record served for a (device, date) pair
// that has never been written.
func DefaultDailySteps() DailySteps {
	return DailySteps{Steps: 0, Goal: DefaultGoal}
}

// DailyStepRecord is a daily record tagged with its date, as returned by
// the history endpoint (descending by date).
type DailyStepRecord struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
	Goal  int    `json:"goal"`
}
