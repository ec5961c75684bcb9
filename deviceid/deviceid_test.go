// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deviceid

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

var uuidShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestGenerate_V4Shape(t *testing.T) {
	id := Generate()
	if !uuidShape.MatchString(id) {
		t.Errorf("expected v4-shaped UUID, got %q", id)
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := Generate()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestPseudoUUID_V4Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := pseudoUUID()
		if !uuidShape.MatchString(id) {
			t.Errorf("expected v4-shaped fallback, got %q", id)
		}
	}
}

func TestLoad_GeneratesOnceAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device_id")

	first, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !uuidShape.MatchString(first) {
		t.Errorf("expected v4-shaped id, got %q", first)
	}

	// Second load must return the same identifier
	second, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Errorf("expected stable id, got %q then %q", first, second)
	}

	// And it must survive on disk
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("expected id written to disk")
	}
}
