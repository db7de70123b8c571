package storage

import (
	"fmt"
	"strings"
)

// KV is the key-value persistence API the wizard writes its record to.
// Get reports ok=false for an absent key. Remove of an absent key succeeds.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Close() error
}

// Backend names a KV implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists the supported backends.
var Backends = []Backend{BackendFile, BackendSQLite, BackendMemory}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown storage backend %q (expected file, sqlite or memory)", s)
}

// Open creates the KV for a backend. path is a directory for the file
// backend, a database file for sqlite, and ignored for memory.
func Open(backend Backend, path string) (KV, error) {
	switch backend {
	case BackendFile:
		kv, err := NewFileKV(path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case BackendSQLite:
		kv, err := NewSQLiteKV(path)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// ValidateKey reports whether key can be stored by every backend. Keys map
// one-to-one onto file names, so only letters, digits, '-', '_' and '.' are
// allowed, and "." and ".." are rejected.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("storage key cannot be empty")
	}
	if key == "." || key == ".." {
		return fmt.Errorf("invalid storage key %q", key)
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("invalid storage key %q: character %q not allowed", key, r)
		}
	}
	return nil
}
