// Package digest_cache keeps the digest index in Redis between requests.
package digest_cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"allaboutxrp/domain"

	"github.com/redis/go-redis/v9"
)

const indexKey = "allaboutxrp:digest:index"

// ErrCacheMiss is returned when no index is cached.
var ErrCacheMiss = errors.New("digest index not cached")

// IndexCache stores the digest index as one JSON value with a TTL.
type IndexCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewIndexCache(client redis.UniversalClient, ttl time.Duration) *IndexCache {
	return &IndexCache{client: client, ttl: ttl}
}

// NewIndexCacheWithURL creates a cache from a redis:// URL.
func NewIndexCacheWithURL(url string, ttl time.Duration) (*IndexCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewIndexCache(redis.NewClient(opts), ttl), nil
}

func (c *IndexCache) Get(ctx context.Context) ([]domain.DigestSummary, error) {
	raw, err := c.client.Get(ctx, indexKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var summaries []domain.DigestSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("decode cached index: %w", err)
	}
	return summaries, nil
}

func (c *IndexCache) Set(ctx context.Context, summaries []domain.DigestSummary) error {
	raw, err := json.Marshal(summaries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, indexKey, raw, c.ttl).Err()
}

// Invalidate drops the cached index.
func (c *IndexCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, indexKey).Err()
}

func (c *IndexCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *IndexCache) Close() error {
	return c.client.Close()
}
