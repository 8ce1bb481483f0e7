package storage

import (
	"context"
	"errors"
)

// ErrNoKey is returned by Get when nothing has been stored under the key.
var ErrNoKey = errors.New("storage: key not found")

// KV is the durable collaborator contract: whole values round-trip
// through Get/Set under a fixed logical key. There are no partial
// updates; a Set replaces the entire value atomically.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
