package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rizkyhp/gudangpro/internal/ledger"
	"github.com/rizkyhp/gudangpro/internal/storage"
)

// transactionsKey is the fixed logical key the whole ledger sequence
// lives under in the durable collaborator.
const transactionsKey = "transactions"

// Store persists the ledger through a storage.KV collaborator. Every
// write serializes the entire sequence; the mutex serializes the
// read-modify-write of inserts so a reader never observes a partially
// written sequence.
type Store struct {
	kv storage.KV
	mu sync.Mutex
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) InsertTransaction(ctx context.Context, tx *ledger.Transaction) error {
	return s.InsertTransactions(ctx, []*ledger.Transaction{tx})
}

func (s *Store) InsertTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load(ctx)
	if err != nil {
		return err
	}

	// Newest-first: the batch goes in front of the current sequence.
	seq := make([]*ledger.Transaction, 0, len(txs)+len(existing))
	seq = append(seq, txs...)
	seq = append(seq, existing...)

	return s.save(ctx, seq)
}

func (s *Store) ListTransactions(ctx context.Context) ([]*ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) ([]*ledger.Transaction, error) {
	data, err := s.kv.Get(ctx, transactionsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNoKey) {
			return []*ledger.Transaction{}, nil
		}

		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var txs []*ledger.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrCorruptState, err)
	}

	return txs, nil
}

func (s *Store) save(ctx context.Context, txs []*ledger.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}

	if err := s.kv.Set(ctx, transactionsKey, data); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	return nil
}
