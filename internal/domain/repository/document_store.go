package repository

import "context"

// DocumentStore persists one JSON document per logical key. It is the only
// storage contract in the system; every collection (entries, users, codes,
// contributions) is serialized wholesale under its own key.
//
// Load returns (nil, nil) when the key has never been written. Implementations
// must not panic across this boundary; callers treat any error as "document
// unavailable" and degrade to defaults.
type DocumentStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, doc []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
