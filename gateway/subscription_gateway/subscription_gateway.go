package subscription_gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/port/subscription_port"
	"allaboutxrp/utils/logger"
)

var _ subscription_port.SubscriptionStatusProvider = (*SubscriptionGateway)(nil)

// SubscriptionGateway resolves entitlement from admin e-mails and the
// pro_subscriptions records.
type SubscriptionGateway struct {
	records       subscription_port.SubscriptionRecordPort
	admins        map[string]struct{}
	lookupTimeout time.Duration
	now           func() time.Time
}

func NewSubscriptionGateway(records subscription_port.SubscriptionRecordPort, adminEmails []string, lookupTimeout time.Duration) *SubscriptionGateway {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			admins[email] = struct{}{}
		}
	}
	return &SubscriptionGateway{
		records:       records,
		admins:        admins,
		lookupTimeout: lookupTimeout,
		now:           time.Now,
	}
}

func (g *SubscriptionGateway) SubscriptionStatus(ctx context.Context, viewer *domain.Viewer) domain.SubscriptionStatus {
	email := viewer.NormalizedEmail()
	if email == "" {
		return domain.SubscriptionStatus{}
	}
	if _, ok := g.admins[email]; ok {
		return domain.SubscriptionStatus{Subscribed: true}
	}
	if g.records == nil {
		return domain.SubscriptionStatus{}
	}

	lookupCtx := ctx
	if g.lookupTimeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, g.lookupTimeout)
		defer cancel()
	}

	sub, err := g.records.FetchActiveSubscription(lookupCtx, email)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(lookupCtx.Err(), context.DeadlineExceeded) {
			logger.FromContext(ctx).Warn("subscription lookup timed out", "timeout", g.lookupTimeout)
			return domain.SubscriptionStatusLoading
		}
		logger.FromContext(ctx).Error("subscription lookup failed", "error", err)
		return domain.SubscriptionStatus{}
	}
	if sub == nil {
		return domain.SubscriptionStatus{}
	}

	return domain.SubscriptionStatus{Subscribed: sub.ActiveAt(g.now())}
}
