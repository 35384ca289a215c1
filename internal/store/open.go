package store

import (
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendJSONFile = "jsonfile"
)

// Open builds the typed store on the configured backend.
func Open(backend, sqlitePath, dataDir string) (*Store, error) {
	switch backend {
	case BackendMemory, "":
		return New(NewMemoryKV()), nil
	case BackendSQLite:
		kv, err := NewSQLiteKV(sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		return New(kv), nil
	case BackendJSONFile:
		kv, err := NewJSONFileKV(dataDir)
		if err != nil {
			return nil, fmt.Errorf("open jsonfile backend: %w", err)
		}
		return New(kv), nil
	default:
		return nil, fmt.Errorf("unknown data backend %q", backend)
	}
}
