package digest_gateway

import (
	"context"
	"errors"

	"allaboutxrp/domain"
	"allaboutxrp/driver/digest_cache"
	"allaboutxrp/port/digest_port"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/metrics"
)

var (
	_ digest_port.DigestBySlugPort = (*DigestGateway)(nil)
	_ digest_port.DigestIndexPort  = (*DigestGateway)(nil)
)

const (
	indexCacheName = "digest_index"
	slugCacheName  = "digest_slug"
)

// DigestStore is the database side of the gateway.
type DigestStore interface {
	FetchDigestBySlug(ctx context.Context, slug string) (*domain.Digest, error)
	FetchDigestIndex(ctx context.Context, limit int) ([]domain.DigestSummary, error)
}

// IndexCache is the optional cache in front of the index query.
type IndexCache interface {
	Get(ctx context.Context) ([]domain.DigestSummary, error)
	Set(ctx context.Context, summaries []domain.DigestSummary) error
}

// SlugCache holds validated digests by slug.
type SlugCache interface {
	Get(slug string) (*domain.Digest, bool)
	Add(digest *domain.Digest)
}

type DigestGateway struct {
	store DigestStore
	cache IndexCache
	slugs SlugCache
}

// NewDigestGateway wires the store and an optional index cache. cache may be nil.
func NewDigestGateway(store DigestStore, cache IndexCache) *DigestGateway {
	return &DigestGateway{store: store, cache: cache}
}

// WithSlugCache puts an in-process cache in front of slug lookups.
func (g *DigestGateway) WithSlugCache(cache SlugCache) *DigestGateway {
	g.slugs = cache
	return g
}

func (g *DigestGateway) FetchDigestBySlug(ctx context.Context, slug string) (*domain.Digest, error) {
	if g.slugs != nil {
		if digest, ok := g.slugs.Get(slug); ok {
			metrics.RecordCacheHit(slugCacheName)
			return digest, nil
		}
		metrics.RecordCacheMiss(slugCacheName)
	}
	if g.store == nil {
		return nil, domain.ErrDigestUnavailable
	}
	digest, err := g.store.FetchDigestBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrDigestNotFound) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrDigestUnavailable, err)
	}
	if err := digest.Validate(); err != nil {
		logger.FromContext(ctx).Warn("stored digest violates invariants", "slug", slug, "error", err)
		return nil, err
	}
	if g.slugs != nil {
		g.slugs.Add(digest)
	}
	return digest, nil
}

// FetchDigestIndex returns the complete published index, serving from the
// cache when possible. Cache failures fall
// through to the database and never fail the call.
func (g *DigestGateway) FetchDigestIndex(ctx context.Context) ([]domain.DigestSummary, error) {
	if g.cache != nil {
		summaries, err := g.cache.Get(ctx)
		switch {
		case err == nil:
			metrics.RecordCacheHit(indexCacheName)
			return summaries, nil
		case errors.Is(err, digest_cache.ErrCacheMiss):
			metrics.RecordCacheMiss(indexCacheName)
		default:
			metrics.RecordCacheError(indexCacheName)
			logger.FromContext(ctx).Warn("digest index cache read failed", "error", err)
		}
	}

	if g.store == nil {
		return nil, domain.ErrDigestIndexFailed
	}
	summaries, err := g.store.FetchDigestIndex(ctx, 0)
	if err != nil {
		return nil, errors.Join(domain.ErrDigestIndexFailed, err)
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, summaries); err != nil {
			metrics.RecordCacheError(indexCacheName)
			logger.FromContext(ctx).Warn("digest index cache write failed", "error", err)
		}
	}
	return summaries, nil
}
