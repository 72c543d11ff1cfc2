package session

import "context"

// Store persists small JSON documents by key. Load returns ErrNotFound for
// an absent key; Delete of an absent key is not an error.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
