package digest_db

import (
	"context"
	"testing"
	"time"

	"allaboutxrp/domain"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestRepository_FetchActiveSubscription(t *testing.T) {
	setupTestLogger()

	t.Run("active row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		end := time.Now().Add(48 * time.Hour)
		mock.ExpectQuery(`SELECT email, status, .* FROM pro_subscriptions WHERE lower\(email\) = lower\(\$1\) AND status = 'active'`).
			WithArgs("pro@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"email", "status", "stripe_customer_id", "current_period_end"}).
				AddRow("pro@example.com", "active", "cus_123", &end))

		sub, err := repo.FetchActiveSubscription(context.Background(), "pro@example.com")
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, "cus_123", sub.StripeCustomerID)
		assert.True(t, sub.ActiveAt(time.Now()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stored email casing is ignored", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		end := time.Now().Add(48 * time.Hour)
		mock.ExpectQuery(`WHERE lower\(email\) = lower\(\$1\)`).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"email", "status", "stripe_customer_id", "current_period_end"}).
				AddRow("Alice@Example.com", "active", "cus_alice", &end))

		sub, err := repo.FetchActiveSubscription(context.Background(), "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, "Alice@Example.com", sub.Email)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`FROM pro_subscriptions`).
			WithArgs("free@example.com").
			WillReturnError(pgx.ErrNoRows)

		sub, err := repo.FetchActiveSubscription(context.Background(), "free@example.com")
		require.NoError(t, err)
		assert.Nil(t, sub)
	})
}

func TestDigestRepository_FetchBillingCustomerID(t *testing.T) {
	setupTestLogger()

	t.Run("found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`SELECT stripe_customer_id FROM pro_subscriptions WHERE lower\(email\) = lower\(\$1\)`).
			WithArgs("pro@example.com").
			WillReturnRows(pgxmock.NewRows([]string{"stripe_customer_id"}).AddRow("cus_123"))

		id, err := repo.FetchBillingCustomerID(context.Background(), "pro@example.com")
		require.NoError(t, err)
		assert.Equal(t, "cus_123", id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("never subscribed", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewDigestRepository(mock)
		mock.ExpectQuery(`SELECT stripe_customer_id FROM pro_subscriptions`).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err = repo.FetchBillingCustomerID(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNoBillingCustomer)
	})
}
