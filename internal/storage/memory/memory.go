package memory

import (
	"context"
	"sync"

	"github.com/rizkyhp/gudangpro/internal/storage"
)

// Store is an in-memory storage.KV used in tests and as a throwaway
// backend for local experimentation.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, storage.ErrNoKey
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.values[key] = stored

	return nil
}
