package storage

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/BetEngine_Go/internal/repository"
)

// cachedEntry wraps record bytes with version metadata for cache invalidation
type cachedEntry struct {
	Version  string
	Value    []byte
	CachedAt time.Time
}

// CachedKV is a write-through LRU cache of raw record bytes in front of another KV.
// Entries expire after the TTL so an external writer (cmd/reset) is eventually observed.
type CachedKV struct {
	inner repository.KV
	lru   *expirable.LRU[string, *cachedEntry]
}

// NewCachedKV wraps inner with a cache of the given size and TTL
func NewCachedKV(inner repository.KV, size int, ttl time.Duration) *CachedKV {
	return &CachedKV{
		inner: inner,
		lru:   expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// Get serves from the cache, falling through to the inner store on a miss
func (c *CachedKV) Get(ctx context.Context, key string) ([]byte, error) {
	if entry, ok := c.lru.Get(key); ok {
		if entry.Version == CacheSchemaVersion {
			return append([]byte(nil), entry.Value...), nil
		}
		c.lru.Remove(key)
	}

	value, err := c.inner.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.lru.Remove(key)
		}
		return nil, err
	}
	c.set(key, value)
	return value, nil
}

// Put writes to the inner store first and caches only on success
func (c *CachedKV) Put(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Put(ctx, key, value); err != nil {
		c.lru.Remove(key)
		return err
	}
	c.set(key, value)
	return nil
}

func (c *CachedKV) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return c.inner.Delete(ctx, key)
}

// Close purges the cache and closes the inner store
func (c *CachedKV) Close() error {
	c.lru.Purge()
	return c.inner.Close()
}

// Len returns the number of cached records
func (c *CachedKV) Len() int {
	return c.lru.Len()
}

func (c *CachedKV) set(key string, value []byte) {
	c.lru.Add(key, &cachedEntry{
		Version:  CacheSchemaVersion,
		Value:    append([]byte(nil), value...),
		CachedAt: time.Now(),
	})
}
