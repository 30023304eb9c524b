package access_usecase

import (
	"context"

	"allaboutxrp/domain"
	"allaboutxrp/port/subscription_port"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/metrics"
)

// AccessUsecase resolves the viewer's entitlement and gates a digest.
type AccessUsecase struct {
	statusProvider subscription_port.SubscriptionStatusProvider
}

func NewAccessUsecase(statusProvider subscription_port.SubscriptionStatusProvider) *AccessUsecase {
	return &AccessUsecase{statusProvider: statusProvider}
}

// Status reports the viewer's entitlement. A nil viewer is anonymous.
func (u *AccessUsecase) Status(ctx context.Context, viewer *domain.Viewer) domain.SubscriptionStatus {
	return u.statusProvider.SubscriptionStatus(ctx, viewer)
}

// Execute returns the decision together with the status it was based on.
func (u *AccessUsecase) Execute(ctx context.Context, digest *domain.Digest, viewer *domain.Viewer) (domain.AccessDecision, domain.SubscriptionStatus) {
	status := u.Status(ctx, viewer)
	decision := RenderAccessDecision(digest, status)

	metrics.RecordAccessDecision(string(decision.Kind))
	logger.FromContext(ctx).Debug("access decided", "slug", digest.Slug, "kind", decision.Kind, "state", status.State())
	return decision, status
}
