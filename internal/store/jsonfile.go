package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// JSONFileKV keeps one file per key inside a data directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// blob behind.
type JSONFileKV struct {
	mu  sync.Mutex
	dir string
}

func NewJSONFileKV(dir string) (*JSONFileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONFileKV{dir: dir}, nil
}

func (j *JSONFileKV) path(key string) string {
	return filepath.Join(j.dir, key+".json")
}

func (j *JSONFileKV) Get(_ context.Context, key string) ([]byte, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	raw, err := os.ReadFile(j.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return raw, nil
}

func (j *JSONFileKV) Put(_ context.Context, key string, value []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	tmp := j.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, j.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}

func (j *JSONFileKV) Delete(_ context.Context, key string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := os.Remove(j.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (j *JSONFileKV) Close() error {
	return nil
}
