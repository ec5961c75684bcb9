// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SaveSettingsRequest: deviceId, goal, stride, weight, sensitivity
  - SaveStepsRequest: deviceId, date, steps, goal

# Response Types

Types for JSON responses:

  - OKResponse: ok
  - HistoryResponse: history ([]DailyStepRecord, descending by date)
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - Settings: per-device profile (goal, stride, weight, sensitivity)
  - DailySteps: stored (steps, goal) for one device and date
  - DailyStepRecord: DailySteps plus its date, for history rows

# Constants

Defaults served when no row exists:

	DefaultGoal        = 8000
	DefaultStride      = 70
	DefaultWeight      = 60
	DefaultSensitivity = 12

Dates are keyed as YYYY-MM-DD strings (DateLayout).
*/
package models
