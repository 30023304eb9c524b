package billing_portal_port

//go:generate go run go.uber.org/mock/mockgen -source=billing_portal_port.go -destination=../../mocks/mock_billing_portal_port.go -package=mocks

import "context"

// BillingPortalPort opens a self-service billing session for a customer and
// returns the URL to send the browser to.
type BillingPortalPort interface {
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
}
