// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deviceid

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Generate returns a new device identifier. It prefers a
// cryptographically strong v4 UUID and falls back to a v4-shaped
// pseudo-random identifier when the system entropy source fails. The
// fallback is not suitable for security-sensitive use; device ids are
// only a client-correlation key, never an authenticated identity.
func Generate() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	return pseudoUUID()
}

// pseudoUUID builds a v4-shaped identifier from math/rand. Version and
// variant bits are set so the result is indistinguishable in format
// from a real v4 UUID.
func pseudoUUID() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rand.IntN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80

	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// Load returns the device identifier persisted at path, generating and
// writing one on first use. The identifier is stable for the lifetime
// of the installation; resetting app data does not touch it.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read device id: %w", err)
	}

	id := Generate()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	return id, nil
}
