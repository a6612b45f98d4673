// Package cache stores rendered tree diagrams keyed by tree content and
// formatting.
//
// # Backends
//
//   - [FileCache]: JSON entry files on local disk, used by the CLI
//   - [RedisCache]: shared cache for multi-instance render services
//   - [NullCache]: disables caching
//
// # Keys
//
// Keys are built by a [Keyer] from a content hash of the tree (see
// [HashTree]) and every formatting field that affects output, so two
// requests share an entry only when they would render identical bytes.
//
// # Usage
//
//	c, _ := cache.NewFileCache("")
//	out, err := cache.Render(ctx, c, cache.NewDefaultKeyer(), root, f, cache.TTLRender)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default entry lifetimes.
const (
	// TTLRender applies to rendered text diagrams.
	TTLRender = 7 * 24 * time.Hour

	// TTLArtifact applies to Graphviz SVG and PNG output.
	TTLArtifact = 30 * 24 * time.Hour
)
