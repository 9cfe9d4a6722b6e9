// Package redis caches assembled walkthroughs keyed by their source
// content, so repeated loads of an unchanged document skip the parse and
// assembly pass.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/waymark/pkg/walkthrough"
)

// ErrCacheMiss is returned by Get when no entry exists for the source.
var ErrCacheMiss = errors.New("walkthrough not cached")

// Cache stores walkthrough graphs in Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached entries.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached entries.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "waymark:walkthrough:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// key derives the cache key from the source bytes. The content hash makes
// staleness impossible: any edit produces a different key.
func (c *Cache) key(source []byte) string {
	sum := sha256.Sum256(source)
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get retrieves the cached graph for the given source, or ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, source []byte) (*walkthrough.Walkthrough, error) {
	data, err := c.client.Get(ctx, c.key(source)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	var wt walkthrough.Walkthrough
	if err := json.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("failed to decode cached walkthrough: %w", err)
	}
	return &wt, nil
}

// Set stores the assembled graph for the given source.
func (c *Cache) Set(ctx context.Context, source []byte, wt *walkthrough.Walkthrough) error {
	data, err := json.Marshal(wt)
	if err != nil {
		return fmt.Errorf("failed to encode walkthrough: %w", err)
	}
	if err := c.client.Set(ctx, c.key(source), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Delete drops the cached entry for the given source.
func (c *Cache) Delete(ctx context.Context, source []byte) error {
	if err := c.client.Del(ctx, c.key(source)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}
