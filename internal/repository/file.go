package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"wemoment-backend/internal/models"
)

// FileSnapshotRepository stores the state document as a JSON file
type FileSnapshotRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileSnapshotRepository creates a repository writing to dir/key.json
func NewFileSnapshotRepository(dir, key string) *FileSnapshotRepository {
	if key == "" {
		key = DefaultKey
	}
	return &FileSnapshotRepository{path: filepath.Join(dir, key+".json")}
}

// Path returns the file backing the repository
func (r *FileSnapshotRepository) Path() string {
	return r.path
}

// Load reads the stored state. A missing or corrupt file yields nil.
func (r *FileSnapshotRepository) Load(ctx context.Context) (*models.AppState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return decodeSnapshot(r.path, data), nil
}

// Save writes the full state through a temp file and rename
func (r *FileSnapshotRepository) Save(ctx context.Context, state models.AppState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Clear removes the snapshot file
func (r *FileSnapshotRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete snapshot file: %w", err)
	}
	return nil
}
