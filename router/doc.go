// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the step-tracking API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st)

# Endpoints

Health:

	GET /health

Settings (per-device profile):

	GET  /settings?deviceId=        - Stored profile or defaults
	POST /settings                  - Upsert profile

Daily steps:

	GET  /steps?deviceId=&date=     - One day's record or {0, 8000}
	POST /steps                     - Upsert one (device, date) record

History:

	GET /history?deviceId=&days=    - Lookback records, descending by date

# Handler Initialization

The router creates handler instances with dependency injection:

	settingsHandler := handlers.NewSettingsHandler(st)
	stepsHandler := handlers.NewStepsHandler(st)
	historyHandler := handlers.NewHistoryHandler(st)

All handlers receive the shared store accessor. The API routes are
registered without a method pattern: each handler dispatches on the
request method itself so unsupported methods produce a JSON 405 body,
and the CORS middleware wrapping this mux answers OPTIONS preflight
for every path.
*/
package router
