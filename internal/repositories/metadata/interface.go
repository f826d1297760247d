package metadata

import (
	"context"
)

// Repository is a key/value table for store-level facts such as the store UUID.
type Repository interface {
	// Get returns the value for key, or a wrapped common.ErrorNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// SetIfAbsent writes value only when key is missing and returns the
	// value that ends up stored.
	SetIfAbsent(ctx context.Context, key string, value []byte) ([]byte, error)
}
