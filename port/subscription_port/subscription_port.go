package subscription_port

//go:generate go run go.uber.org/mock/mockgen -source=subscription_port.go -destination=../../mocks/mock_subscription_port.go -package=mocks

import (
	"context"

	"allaboutxrp/domain"
)

// SubscriptionStatusProvider resolves the entitlement of a viewer. A nil
// viewer is anonymous. It never fails: unresolved lookups report loading.
type SubscriptionStatusProvider interface {
	SubscriptionStatus(ctx context.Context, viewer *domain.Viewer) domain.SubscriptionStatus
}

// SubscriptionRecordPort reads the pro_subscriptions records.
type SubscriptionRecordPort interface {
	FetchActiveSubscription(ctx context.Context, email string) (*domain.ProSubscription, error)
	FetchBillingCustomerID(ctx context.Context, email string) (string, error)
}
