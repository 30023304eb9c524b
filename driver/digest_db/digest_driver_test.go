package digest_db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() {
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

var digestColumns = []string{"id", "title", "slug", "week_start", "week_end", "content", "html_content", "published_at"}

func TestDigestRepository_FetchDigestBySlug(t *testing.T) {
	setupTestLogger()

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 6)
	published := weekEnd.Add(12 * time.Hour)
	id := uuid.New()

	t.Run("decodes content and optional html", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		html := "<p>Body</p>"
		content := []byte(`{"key_news":[{"title":"ETF","summary":"Filed"}],"price_changes":null,"macro_analysis":[]}`)

		mock.ExpectQuery(`SELECT id, title, slug, week_start, week_end, content, html_content, published_at FROM digests WHERE slug = \$1`).
			WithArgs("week-10").
			WillReturnRows(pgxmock.NewRows(digestColumns).
				AddRow(id.String(), "Week 10", "week-10", weekStart, weekEnd, content, &html, &published))

		digest, err := repo.FetchDigestBySlug(context.Background(), "week-10")
		require.NoError(t, err)
		assert.Equal(t, id, digest.ID)
		assert.Equal(t, "Week 10", digest.Title)
		assert.Equal(t, weekStart, digest.WeekStart)
		assert.Equal(t, published, digest.PublishedAt)

		news, ok := digest.Content.KeyNews.Get()
		require.True(t, ok)
		require.Len(t, news, 1)
		assert.Equal(t, "ETF", news[0].Title)
		assert.False(t, digest.Content.PriceChanges.Present())
		assert.True(t, digest.Content.MacroAnalysis.Present())
		assert.Empty(t, digest.Content.MacroAnalysis.OrZero())

		body, ok := digest.HTMLContent.Get()
		require.True(t, ok)
		assert.Equal(t, html, body)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null html stays absent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`SELECT .* FROM digests WHERE slug = \$1`).
			WithArgs("week-11").
			WillReturnRows(pgxmock.NewRows(digestColumns).
				AddRow(id.String(), "Week 11", "week-11", weekStart, weekEnd, []byte(`{}`), (*string)(nil), &published))

		digest, err := repo.FetchDigestBySlug(context.Background(), "week-11")
		require.NoError(t, err)
		assert.False(t, digest.HTMLContent.Present())
		assert.False(t, digest.Content.KeyNews.Present())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query only matches published rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`FROM digests WHERE slug = \$1 AND published_at IS NOT NULL AND published_at <= now\(\)`).
			WithArgs("week-12").
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.FetchDigestBySlug(context.Background(), "week-12")
		assert.ErrorIs(t, err, domain.ErrDigestNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	unpublished := []struct {
		name        string
		publishedAt *time.Time
	}{
		{name: "draft without published_at", publishedAt: nil},
		{name: "scheduled in the future", publishedAt: func() *time.Time { ts := time.Now().Add(72 * time.Hour); return &ts }()},
	}
	for _, tt := range unpublished {
		t.Run(tt.name+" is not found", func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewDigestRepository(mock)
			mock.ExpectQuery(`SELECT .* FROM digests WHERE slug = \$1`).
				WithArgs("week-12").
				WillReturnRows(pgxmock.NewRows(digestColumns).
					AddRow(id.String(), "Week 12", "week-12", weekStart, weekEnd, []byte(`{}`), (*string)(nil), tt.publishedAt))

			digest, err := repo.FetchDigestBySlug(context.Background(), "week-12")
			assert.Nil(t, digest)
			assert.ErrorIs(t, err, domain.ErrDigestNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`SELECT .* FROM digests WHERE slug = \$1`).
			WithArgs("gone").
			WillReturnError(pgx.ErrNoRows)

		digest, err := repo.FetchDigestBySlug(context.Background(), "gone")
		assert.Nil(t, digest)
		assert.ErrorIs(t, err, domain.ErrDigestNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		dbErr := errors.New("connection reset")
		mock.ExpectQuery(`SELECT .* FROM digests WHERE slug = \$1`).
			WithArgs("week-10").
			WillReturnError(dbErr)

		_, err = repo.FetchDigestBySlug(context.Background(), "week-10")
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, domain.ErrDigestNotFound)
	})

	t.Run("malformed content", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`SELECT .* FROM digests WHERE slug = \$1`).
			WithArgs("week-12").
			WillReturnRows(pgxmock.NewRows(digestColumns).
				AddRow(id.String(), "Week 12", "week-12", weekStart, weekEnd, []byte(`{"key_news":"oops"}`), (*string)(nil), &published))

		_, err = repo.FetchDigestBySlug(context.Background(), "week-12")
		assert.ErrorContains(t, err, "malformed content")
	})

	t.Run("nil pool", func(t *testing.T) {
		repo := &DigestRepository{}
		_, err := repo.FetchDigestBySlug(context.Background(), "week-10")
		assert.EqualError(t, err, "database connection not available")
	})
}

func TestDigestRepository_FetchDigestIndex(t *testing.T) {
	setupTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDigestRepository(mock)
	older := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 7)
	idA, idB := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT id, title, slug, week_start, week_end, published_at FROM digests WHERE published_at <= \$1 ORDER BY week_start DESC, published_at DESC LIMIT 104`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "slug", "week_start", "week_end", "published_at"}).
			AddRow(idB.String(), "Week 9", "week-9", newer, newer.AddDate(0, 0, 6), newer).
			AddRow(idA.String(), "Week 8", "week-8", older, older.AddDate(0, 0, 6), older))

	summaries, err := repo.FetchDigestIndex(context.Background(), 104)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, idB, summaries[0].ID)
	assert.Equal(t, "week-8", summaries[1].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDigestRepository_FetchDigestIndex_Uncapped(t *testing.T) {
	setupTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDigestRepository(mock)
	mock.ExpectQuery(`FROM digests WHERE published_at <= \$1 ORDER BY week_start DESC, published_at DESC$`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "slug", "week_start", "week_end", "published_at"}))

	_, err = repo.FetchDigestIndex(context.Background(), 0)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDigestRepository_FetchDigestIndex_Empty(t *testing.T) {
	setupTestLogger()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewDigestRepository(mock)
	mock.ExpectQuery(`SELECT .* FROM digests`).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "slug", "week_start", "week_end", "published_at"}))

	summaries, err := repo.FetchDigestIndex(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
