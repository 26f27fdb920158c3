package repository

import (
	"context"
	"sync"

	"wemoment-backend/internal/models"
)

// MemorySnapshotRepository keeps the serialized state in process memory.
// Documents go through the same encoding as the durable stores.
type MemorySnapshotRepository struct {
	mu   sync.RWMutex
	key  string
	data []byte
}

// NewMemorySnapshotRepository creates an empty in-memory repository
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{key: DefaultKey}
}

// Load returns the stored state, or nil when nothing usable is stored
func (r *MemorySnapshotRepository) Load(ctx context.Context) (*models.AppState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return decodeSnapshot(r.key, r.data), nil
}

// Save replaces the stored document with the given state
func (r *MemorySnapshotRepository) Save(ctx context.Context, state models.AppState) error {
	data, err := encodeSnapshot(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}

// Clear deletes the stored document
func (r *MemorySnapshotRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	return nil
}

// Raw returns the stored bytes
func (r *MemorySnapshotRepository) Raw() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data
}

// SetRaw overwrites the stored bytes without validation
func (r *MemorySnapshotRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
}
