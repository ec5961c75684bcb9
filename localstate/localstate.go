// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstate

import (
	"sync"
	"time"

	"github.com/ymiyake/manpokei/models"
)

// Snapshot is the durable mirror of client state: the same fields the
// browser build keeps in localStorage for offline-first startup.
// StartTime is unix milliseconds, 0 when not counting.
type Snapshot struct {
	Steps       int   `json:"steps"`
	Goal        int   `json:"goal"`
	Stride      int   `json:"stride"`
	Weight      int   `json:"weight"`
	Sensitivity int   `json:"sensitivity"`
	Counting    bool  `json:"counting"`
	StartTime   int64 `json:"start_time"`
}

// DefaultSnapshot returns the pristine state of a fresh installation.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Goal:        models.DefaultGoal,
		Stride:      models.DefaultStride,
		Weight:      models.DefaultWeight,
		Sensitivity: models.DefaultSensitivity,
	}
}

// State is the single owned instance of mutable client state. Sensor
// handling, timer-driven sync, and settings writes may run on different
// goroutines, so one mutex guards the whole struct; there are no other
// copies and no package-level state.
type State struct {
	mu    sync.Mutex
	snap  Snapshot
	dirty bool
}

func NewState() *State {
	return &State{snap: DefaultSnapshot()}
}

// Restore replaces the in-memory state from a durable snapshot.
// Restoring does not mark the state dirty.
func (s *State) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.dirty = false
}

// Snapshot returns a copy of the current state for mirroring or display.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// AddStep increments the counter by exactly one and marks the state
// dirty for the next sync.
func (s *State) AddStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Steps++
	s.dirty = true
	return s.snap.Steps
}

// AdoptServerSteps applies max-wins reconciliation: the counter takes
// the server value only when it is larger. Reports whether it changed.
func (s *State) AdoptServerSteps(serverSteps int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if serverSteps > s.snap.Steps {
		s.snap.Steps = serverSteps
		return true
	}
	return false
}

// SetProfile overwrites all profile fields, e.g. from a server load.
func (s *State) SetProfile(p models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Goal = p.Goal
	s.snap.Stride = p.Stride
	s.snap.Weight = p.Weight
	s.snap.Sensitivity = p.Sensitivity
}

// Profile returns the current profile fields.
func (s *State) Profile() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Settings{
		Goal:        s.snap.Goal,
		Stride:      s.snap.Stride,
		Weight:      s.snap.Weight,
		Sensitivity: s.snap.Sensitivity,
	}
}

func (s *State) SetGoal(goal int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Goal = goal
}

func (s *State) SetPersonal(stride, weight int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Stride = stride
	s.snap.Weight = weight
}

func (s *State) SetSensitivity(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Sensitivity = v
}

// StartCounting marks counting active, setting the session start time
// only if one is not already running (resume keeps the original start).
func (s *State) StartCounting(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Counting = true
	if s.snap.StartTime == 0 {
		s.snap.StartTime = now.UnixMilli()
	}
}

// StopCounting clears the counting flag and the session start time.
func (s *State) StopCounting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Counting = false
	s.snap.StartTime = 0
}

func (s *State) Counting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Counting
}

// SyncView returns what a push needs in one locked read: the counter,
// the goal, and whether anything changed since the last push attempt.
func (s *State) SyncView() (steps, goal int, dirty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Steps, s.snap.Goal, s.dirty
}

// ClearDirty unconditionally clears the dirty flag. Called after every
// push attempt, successful or not; a failed push is not retried until
// the next step re-dirties the state.
func (s *State) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

func (s *State) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Reset restores the pristine snapshot. The device identifier is not
// part of this state and survives.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = DefaultSnapshot()
	s.dirty = false
}
