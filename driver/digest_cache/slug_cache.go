package digest_cache

import (
	"time"

	"allaboutxrp/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SlugCache keeps recently served digests in process memory.
type SlugCache struct {
	lru *expirable.LRU[string, *domain.Digest]
}

// NewSlugCache returns nil when size is not positive.
func NewSlugCache(size int, ttl time.Duration) *SlugCache {
	if size <= 0 {
		return nil
	}
	return &SlugCache{lru: expirable.NewLRU[string, *domain.Digest](size, nil, ttl)}
}

// Get returns a copy so callers cannot mutate the cached entry.
func (c *SlugCache) Get(slug string) (*domain.Digest, bool) {
	d, ok := c.lru.Get(slug)
	if !ok {
		return nil, false
	}
	cp := *d
	return &cp, true
}

func (c *SlugCache) Add(digest *domain.Digest) {
	cp := *digest
	c.lru.Add(digest.Slug, &cp)
}

func (c *SlugCache) Len() int {
	return c.lru.Len()
}
