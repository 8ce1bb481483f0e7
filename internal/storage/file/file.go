package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rizkyhp/gudangpro/internal/storage"
)

// Store is a storage.KV backed by a single JSON file, for single-user
// setups without a database. The whole map is rewritten on every Set,
// matching the no-partial-updates contract.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{path: path}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return nil, err
	}

	value, ok := values[key]
	if !ok {
		return nil, storage.ErrNoKey
	}

	return value, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}

	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store file: %w", err)
	}

	// Write to a sibling temp file first so readers never see a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store file: %w", err)
	}

	return nil
}

func (s *Store) read() (map[string][]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]byte), nil
		}

		return nil, fmt.Errorf("reading store file: %w", err)
	}

	values := make(map[string][]byte)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decoding store file: %w", err)
	}

	return values, nil
}
