// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client talks to the manpokei API on behalf of a device.
//
// Every call carries the device id, either as a query parameter or
// injected into the JSON body. Failures are absorbed: getters return
// nil and posters return false, so callers can fall back to local
// state without unwinding. Network errors are logged, never returned.
package client
