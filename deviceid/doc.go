// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package deviceid generates and persists the device identifier.

The identifier is an opaque v4-UUID-shaped token correlating all data
to one installation. It is generated once, persisted to a small file,
and survives app-data resets. It is not an authenticated user identity.

Generation is capability-checked: github.com/google/uuid (crypto/rand)
is the preferred source, with a math/rand fallback producing the same
v4 shape when the entropy source fails. The fallback is documented as
unsuitable for security-sensitive use; it is only used as a
correlation key here.
*/
package deviceid
