package billing_portal_gateway

import (
	"context"
	"errors"

	"allaboutxrp/domain"
	"allaboutxrp/port/billing_portal_port"
	apperrors "allaboutxrp/utils/errors"
	"allaboutxrp/utils/logger"
)

var _ billing_portal_port.BillingPortalPort = (*BillingPortalGateway)(nil)

// PortalSessionCreator is the Stripe client surface used here.
type PortalSessionCreator interface {
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}

type BillingPortalGateway struct {
	client PortalSessionCreator
}

// NewBillingPortalGateway accepts a nil client when billing is not configured.
func NewBillingPortalGateway(client PortalSessionCreator) *BillingPortalGateway {
	return &BillingPortalGateway{client: client}
}

func (g *BillingPortalGateway) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if g.client == nil {
		return "", domain.ErrBillingNotConfigured
	}

	portalURL, err := g.client.CreatePortalSession(ctx, customerID, returnURL)
	if err != nil {
		logger.FromContext(ctx).Error("billing portal session failed", "error", err)

		var providerErr *domain.BillingProviderError
		if errors.As(err, &providerErr) {
			return "", apperrors.NewExternalAPIContextError(
				"billing provider rejected the request",
				"gateway", "BillingPortalGateway", "CreatePortalSession",
				err, map[string]interface{}{"provider_status": providerErr.StatusCode},
			)
		}
		if apperrors.IsTimeoutError(err) {
			return "", apperrors.NewTimeoutContextError(
				"billing provider timed out",
				"gateway", "BillingPortalGateway", "CreatePortalSession", err, nil,
			)
		}
		return "", apperrors.NewExternalAPIContextError(
			"billing provider unavailable",
			"gateway", "BillingPortalGateway", "CreatePortalSession", err, nil,
		)
	}
	return portalURL, nil
}
