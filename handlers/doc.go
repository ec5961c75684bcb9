// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the step-tracking API.

# Handler Types

Each handler is a struct holding the shared store accessor:

  - SettingsHandler: per-device profile get/save
  - StepsHandler: daily step record get/save
  - HistoryHandler: lookback-window history retrieval

Handlers are created via constructor functions that accept the store:

	settingsHandler := handlers.NewSettingsHandler(st)

# Routing

There is exactly one handler per route. Each registers a single Handle
method and dispatches on r.Method internally, so an unsupported method
yields a JSON 405 body rather than the ServeMux plain-text default:

	GET  /settings → stored profile, or defaults for an unknown device
	POST /settings → upsert full profile
	GET  /steps    → {steps, goal} for one date, or {0, 8000}
	POST /steps    → upsert one (device, date) record
	GET  /history  → records with date >= today - days, descending

OPTIONS preflight is answered by the CORS middleware before routing.

# Error Contract

	400 {"error": "deviceId is required"}           missing identity
	400 {"error": "deviceId and date are required"} missing steps key
	405 {"error": "Method not allowed"}
	500 {"error": "Internal server error"}          any persistence failure

Persistence failures are logged with slog and surfaced opaquely.
*/
package handlers
