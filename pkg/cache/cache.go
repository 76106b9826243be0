// Package cache stores computed shortest path results.
//
// Results are keyed by the SHA-256 of the raw graph file bytes plus the
// source vertex and engine mode, so an unchanged file never has to be
// solved twice.
// Backends:
//   - [NullCache]: stores nothing (--no-cache, tests)
//   - [FileCache]: one JSON file per entry under the user cache directory
//   - [RedisCache]: shared entries for the HTTP server and multiple hosts
//
// Keys are produced by a [Keyer]; [ScopedKeyer] adds a namespace prefix.
//
// # Usage
//
//	c, err := cache.NewFileCache(dir)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	key := cache.NewDefaultKeyer().ResultKey(cache.Hash(raw), source, false)
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true, or false on a miss.
	// Expired and unreadable entries are misses, not errors.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
