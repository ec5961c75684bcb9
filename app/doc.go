// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package app is the client-side core: it owns the step detector, the
// local state and its durable mirror, and the API client, and routes
// every action through a single event dispatcher.
//
// Sync is deliberately simple. A 30 second ticker, stopping a session,
// and shutdown all trigger the same push; the push is skipped when the
// state is clean and the counter is zero; a failed push is dropped and
// the next step re-arms it. Reconciliation with the server is max-wins
// on the step counter so offline counting is never lost.
package app
