// Package cache stores rendered artifacts between CLI runs.
//
// Rendering a table through Graphviz is the only expensive step in the
// chemistry tools, and its output depends on nothing but the DOT source and
// the output format. [Key] turns those inputs into a cache key; a [Cache]
// keeps the bytes, on disk with [NewFileCache] or nowhere with
// [NewNullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the cached data and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
