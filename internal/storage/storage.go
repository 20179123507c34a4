// Package storage is the shop's stand-in for browser local and session
// storage: a flat key-value surface holding opaque JSON blobs. Stores
// read their state back through it on startup and write it back after
// every mutation, so a real backing store could replace either backend
// without touching callers.
package storage

import (
	"encoding/json"
	"fmt"
)

// Storage is a minimal key-value surface. Get reports whether the key
// exists; a missing key is not an error.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// GetJSON reads the value under key into dst. It reports whether the
// key was present. A present but unparseable value is returned as an
// error so the caller can discard it and fall back to defaults.
func GetJSON[T any](s Storage, key string, dst *T) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals v and stores it under key.
func SetJSON(s Storage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.Set(key, raw); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
