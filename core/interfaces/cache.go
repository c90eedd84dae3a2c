// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key does not exist or has expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the key-value store used to keep raw feed responses.
// Implementations can be in-memory, SQLite, Redis, Postgres or any other store.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value for 24 hours
//	err := cache.Set(ctx, key, record, 24*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, key)
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// not cached or expired
//	}
//
//	// Remove a value
//	err = cache.Delete(ctx, key)
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Exists reports whether a live value is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
