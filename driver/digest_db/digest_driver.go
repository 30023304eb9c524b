package digest_db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/utils/logger"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const fetchDigestBySlugQuery = `SELECT id, title, slug, week_start, week_end, content, html_content, published_at FROM digests WHERE slug = $1 AND published_at IS NOT NULL AND published_at <= now()`

// FetchDigestBySlug returns domain.ErrDigestNotFound when no published row
// matches. Drafts and scheduled digests are not found.
func (r *DigestRepository) FetchDigestBySlug(ctx context.Context, slug string) (*domain.Digest, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	var (
		id          string
		digest      domain.Digest
		content     []byte
		htmlContent *string
		publishedAt *time.Time
	)
	err := r.pool.QueryRow(ctx, fetchDigestBySlugQuery, slug).Scan(
		&id, &digest.Title, &digest.Slug, &digest.WeekStart, &digest.WeekEnd, &content, &htmlContent, &publishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDigestNotFound
		}
		logger.FromContext(ctx).Error("error fetching digest", "slug", slug, "error", err)
		return nil, fmt.Errorf("fetch digest %q: %w", slug, err)
	}
	if publishedAt == nil || publishedAt.After(time.Now()) {
		return nil, domain.ErrDigestNotFound
	}
	digest.PublishedAt = *publishedAt

	if digest.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("digest %q has malformed id: %w", slug, err)
	}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &digest.Content); err != nil {
			return nil, fmt.Errorf("digest %q has malformed content: %w", slug, err)
		}
	}
	if htmlContent != nil {
		digest.HTMLContent = domain.Some(*htmlContent)
	}

	return &digest, nil
}

// FetchDigestIndex returns published digests without their bodies, newest
// first. A limit of zero or less returns all of them.
func (r *DigestRepository) FetchDigestIndex(ctx context.Context, limit int) ([]domain.DigestSummary, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	builder := r.psql.
		Select("id", "title", "slug", "week_start", "week_end", "published_at").
		From("digests").
		Where(sq.LtOrEq{"published_at": time.Now().UTC()}).
		OrderBy("week_start DESC", "published_at DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build digest index query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Error("error fetching digest index", "error", err)
		return nil, fmt.Errorf("fetch digest index: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.DigestSummary, 0)
	for rows.Next() {
		var (
			id string
			s  domain.DigestSummary
		)
		if err := rows.Scan(&id, &s.Title, &s.Slug, &s.WeekStart, &s.WeekEnd, &s.PublishedAt); err != nil {
			return nil, fmt.Errorf("scan digest index row: %w", err)
		}
		if s.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("digest %q has malformed id: %w", s.Slug, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate digest index: %w", err)
	}

	return summaries, nil
}
