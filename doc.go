// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the manpokei API server.

Manpokei is a personal step tracker: a motion-sensing client estimates
steps from accelerometer data and syncs per-device daily counts and
settings to this small JSON-over-HTTP API.

# Starting the Server

The server requires a database URL via environment variables, a .env
file, or CLI flags:

	DATABASE_URL=file:manpokei.db go run main.go

Or with flags:

	go run main.go -p 8787 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite DSN or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 8787)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (settings, steps, history)
  - router: Route definitions
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and defaults
  - store: The single shared accessor for both tables
  - db: Schema creation per dialect
  - cliparse: Configuration parsing

The client side of the system lives in sibling packages and shares the
models package:

  - detector: step detection over accelerometer samples
  - deviceid: durable device-identifier generation
  - localstate: guarded in-memory state plus its durable local mirror
  - client: best-effort HTTP API client (failures become nil results)
  - app: sync orchestration, event dispatch, validation, derived metrics
  - history: lookback-window series construction and aggregates

See package documentation for each component.
*/
package main
