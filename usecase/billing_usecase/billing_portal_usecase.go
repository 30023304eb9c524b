package billing_usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"allaboutxrp/domain"
	"allaboutxrp/port/billing_portal_port"
	"allaboutxrp/port/subscription_port"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/metrics"
)

// BillingPortalUsecase opens the self-service billing portal for a viewer.
type BillingPortalUsecase struct {
	portal           billing_portal_port.BillingPortalPort
	records          subscription_port.SubscriptionRecordPort
	configured       bool
	defaultReturnURL string
}

func NewBillingPortalUsecase(
	portal billing_portal_port.BillingPortalPort,
	records subscription_port.SubscriptionRecordPort,
	configured bool,
	defaultReturnURL string,
) *BillingPortalUsecase {
	return &BillingPortalUsecase{
		portal:           portal,
		records:          records,
		configured:       configured,
		defaultReturnURL: defaultReturnURL,
	}
}

// Execute returns the portal URL untouched. origin is the caller's Origin
// header; the portal returns the viewer to <origin>/digest.
func (u *BillingPortalUsecase) Execute(ctx context.Context, viewer *domain.Viewer, origin string) (string, error) {
	portalURL, err := u.execute(ctx, viewer, origin)
	metrics.RecordBillingPortal(portalStatus(err))
	return portalURL, err
}

func (u *BillingPortalUsecase) execute(ctx context.Context, viewer *domain.Viewer, origin string) (string, error) {
	if !u.configured {
		return "", domain.ErrBillingNotConfigured
	}
	email := viewer.NormalizedEmail()
	if email == "" {
		return "", domain.ErrNotAuthenticated
	}

	customerID, err := u.records.FetchBillingCustomerID(ctx, email)
	if err != nil {
		return "", err
	}

	returnURL := u.ReturnURL(origin)
	logger.FromContext(ctx).Info("opening billing portal", "return_url", returnURL)
	return u.portal.CreatePortalSession(ctx, customerID, returnURL)
}

// ReturnURL is <origin>/digest for a well-formed http(s) origin, else the default.
func (u *BillingPortalUsecase) ReturnURL(origin string) string {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return u.defaultReturnURL
	}
	parsed, err := url.Parse(origin)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" || parsed.Path != "" {
		return u.defaultReturnURL
	}
	return origin + "/digest"
}

func portalStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrBillingNotConfigured):
		return "not_configured"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrNoBillingCustomer):
		return "no_customer"
	default:
		return "error"
	}
}
