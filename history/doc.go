// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package history turns raw daily records into a fixed rendering
// window: a descending run of days ending at today, with the live
// counter substituted for today's entry and zero placeholders for
// dates the server has never seen.
package history
