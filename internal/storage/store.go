package storage

import "context"

// KeyValue is the local-storage contract: string values under string keys.
// A browser host backs it with window.localStorage; other hosts use
// AferoStore.
type KeyValue interface {
	// GetItem returns the value and whether the key exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Updater is implemented by stores that can read-modify-write one key
// atomically with respect to other callers in the same process.
type Updater interface {
	Update(ctx context.Context, key string, fn func(current string, exists bool) (string, error)) error
}
