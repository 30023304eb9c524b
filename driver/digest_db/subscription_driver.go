package digest_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/utils/logger"

	"github.com/jackc/pgx/v5"
)

const fetchActiveSubscriptionQuery = `SELECT email, status, COALESCE(stripe_customer_id, ''), current_period_end FROM pro_subscriptions WHERE lower(email) = lower($1) AND status = 'active' ORDER BY current_period_end DESC NULLS FIRST LIMIT 1`

// FetchActiveSubscription returns nil without error when the email has no active row.
// Emails compare case-insensitively since stored rows keep the provider's casing.
func (r *DigestRepository) FetchActiveSubscription(ctx context.Context, email string) (*domain.ProSubscription, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	var (
		sub       domain.ProSubscription
		periodEnd *time.Time
	)
	err := r.pool.QueryRow(ctx, fetchActiveSubscriptionQuery, email).Scan(
		&sub.Email, &sub.Status, &sub.StripeCustomerID, &periodEnd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.FromContext(ctx).Error("error fetching subscription", "error", err)
		return nil, fmt.Errorf("fetch active subscription: %w", err)
	}
	sub.CurrentPeriodEnd = periodEnd

	return &sub, nil
}

const fetchBillingCustomerIDQuery = `SELECT stripe_customer_id FROM pro_subscriptions WHERE lower(email) = lower($1) AND stripe_customer_id IS NOT NULL ORDER BY updated_at DESC LIMIT 1`

// FetchBillingCustomerID returns domain.ErrNoBillingCustomer when the email never subscribed.
func (r *DigestRepository) FetchBillingCustomerID(ctx context.Context, email string) (string, error) {
	if r.pool == nil {
		return "", errNoPool
	}

	var customerID string
	err := r.pool.QueryRow(ctx, fetchBillingCustomerIDQuery, email).Scan(&customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNoBillingCustomer
		}
		logger.FromContext(ctx).Error("error fetching billing customer", "error", err)
		return "", fmt.Errorf("fetch billing customer: %w", err)
	}
	if customerID == "" {
		return "", domain.ErrNoBillingCustomer
	}

	return customerID, nil
}
