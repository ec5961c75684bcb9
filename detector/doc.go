// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package detector implements step detection over accelerometer samples.

The detector consumes a stream of 3-axis acceleration readings
(including gravity), each tagged with an arrival timestamp, and emits
discrete step events:

	d := detector.New(sensitivity)
	if d.Process(sample) {
		// one step
	}

A step fires when both hold:

  - |magnitude - lastMagnitude| > sensitivity, where
    magnitude = sqrt(x² + y² + z²)
  - at least 250ms (DebounceInterval) have passed since the last
    counted step

lastMagnitude is updated after every well-formed sample whether or not
a step fired. Samples without an acceleration vector are skipped with
no state mutation. Sensitivity is a user-tunable integer; its bounds
are enforced at the settings-save boundary, not here.
*/
package detector
