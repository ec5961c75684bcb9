// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package localstate

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mirror persists snapshots to a JSON file, the headless analog of the
// browser's localStorage keys. Load on startup, Save on every change,
// Clear on reset.
type Mirror struct {
	path string
}

func NewMirror(path string) *Mirror {
	return &Mirror{path: path}
}

// Load reads the durable snapshot. A missing or unreadable file yields
// the pristine default snapshot; startup never fails on local state.
func (m *Mirror) Load() Snapshot {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return DefaultSnapshot()
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return DefaultSnapshot()
	}
	return snap
}

// Save writes the snapshot durably via a temp-file rename so a crash
// mid-write never leaves a truncated mirror.
func (m *Mirror) Save(snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode local state: %w", err)
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write local state: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("failed to replace local state: %w", err)
	}
	return nil
}

// Clear removes the durable mirror. Clearing an already-missing mirror
// is not an error.
func (m *Mirror) Clear() error {
	err := os.Remove(m.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear local state: %w", err)
	}
	return nil
}
