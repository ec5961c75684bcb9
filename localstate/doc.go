// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package localstate owns the client's mutable state and its durable mirror.

State is the single owned instance of transient client state: step
counter, profile, counting flag, session start, and the dirty flag
marking unsynced changes. Every field is accessed through methods that
hold one mutex, so sensor handling, the sync timer, and settings writes
can run on different goroutines without a data race. There are no
package-level variables.

Mirror persists Snapshot values to a JSON file for offline-first
startup, the headless analog of the browser client's localStorage keys
(steps, goal, stride, weight, sensitivity, counting flag, start time).
A missing or corrupt mirror silently yields the pristine defaults. The
device identifier is deliberately not part of the mirror; it lives in
package deviceid and survives a reset.
*/
package localstate
