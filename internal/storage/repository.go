package storage

import "context"

// KV is a string-keyed text store. The app keeps its whole task list under a
// single key.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
