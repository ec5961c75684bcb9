// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package detector

import (
	"math"
	"time"
)

// DebounceInterval is the minimum time between two counted steps.
const DebounceInterval = 250 * time.Millisecond

// Acceleration is one 3-axis reading including gravity.
type Acceleration struct {
	X, Y, Z float64
}

// Sample is an accelerometer reading tagged with its arrival time.
// A nil Acceleration marks a malformed reading; Process skips it
// without mutating any state.
type Sample struct {
	Acceleration *Acceleration
	Time         time.Time
}

// Detector turns a stream of acceleration samples into discrete step
// events via magnitude-delta threshold crossing with debounce.
type Detector struct {
	sensitivity   int
	lastMagnitude float64
	lastStepTime  time.Time
}

func New(sensitivity int) *Detector {
	return &Detector{sensitivity: sensitivity}
}

// SetSensitivity adjusts the magnitude-delta threshold. Bounds are the
// caller's concern; they are enforced at the settings-save boundary.
func (d *Detector) SetSensitivity(v int) {
	d.sensitivity = v
}

func (d *Detector) Sensitivity() int {
	return d.sensitivity
}

// Process consumes one sample and reports whether a step fired.
// A step fires when the magnitude delta exceeds the sensitivity AND the
// debounce interval has passed since the last counted step. The last
// magnitude is updated on every well-formed sample regardless.
func (d *Detector) Process(s Sample) bool {
	if s.Acceleration == nil {
		return false
	}

	a := s.Acceleration
	magnitude := math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)

	fired := math.Abs(magnitude-d.lastMagnitude) > float64(d.sensitivity) &&
		s.Time.Sub(d.lastStepTime) > DebounceInterval
	if fired {
		d.lastStepTime = s.Time
	}

	d.lastMagnitude = magnitude
	return fired
}
