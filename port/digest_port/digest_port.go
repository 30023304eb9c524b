package digest_port

//go:generate go run go.uber.org/mock/mockgen -source=digest_port.go -destination=../../mocks/mock_digest_port.go -package=mocks

import (
	"context"

	"allaboutxrp/domain"
)

// DigestBySlugPort retrieves one digest. A missing slug yields domain.ErrDigestNotFound.
type DigestBySlugPort interface {
	FetchDigestBySlug(ctx context.Context, slug string) (*domain.Digest, error)
}

// DigestIndexPort retrieves the summaries of all published digests.
// Callers must not rely on the returned order.
type DigestIndexPort interface {
	FetchDigestIndex(ctx context.Context) ([]domain.DigestSummary, error)
}
