package repositories

import (
	"context"
	"sync"
)

type memoryKeyValueRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueRepository returns a process-local store. Nothing survives
// a restart.
func NewMemoryKeyValueRepository() KeyValueRepository {
	return &memoryKeyValueRepository{data: make(map[string]string)}
}

func (r *memoryKeyValueRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *memoryKeyValueRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	r.data[key] = value
	r.mu.Unlock()
	return nil
}
