package domain

import "time"

// SubscriptionState is the resolved entitlement of a viewer.
type SubscriptionState string

const (
	SubscriptionStateLoading       SubscriptionState = "loading"
	SubscriptionStateSubscribed    SubscriptionState = "subscribed"
	SubscriptionStateNotSubscribed SubscriptionState = "not_subscribed"
)

// SubscriptionStatus is the viewer's entitlement as reported by the provider.
// The Subscribed flag is meaningless while either loading flag is set.
type SubscriptionStatus struct {
	Subscribed          bool `json:"subscribed"`
	AuthLoading         bool `json:"auth_loading"`
	SubscriptionLoading bool `json:"subscription_loading"`
}

// State collapses the flags into the tri-state used for access decisions.
func (s SubscriptionStatus) State() SubscriptionState {
	if s.AuthLoading || s.SubscriptionLoading {
		return SubscriptionStateLoading
	}
	if s.Subscribed {
		return SubscriptionStateSubscribed
	}
	return SubscriptionStateNotSubscribed
}

// CanManageSubscription reports whether the billing portal entry is offered.
func (s SubscriptionStatus) CanManageSubscription() bool {
	return s.State() == SubscriptionStateSubscribed
}

// ProSubscription is a row of the pro_subscriptions table.
type ProSubscription struct {
	Email            string
	Status           string
	StripeCustomerID string
	CurrentPeriodEnd *time.Time
}

// ActiveAt reports whether the subscription grants access at now.
func (p *ProSubscription) ActiveAt(now time.Time) bool {
	if p.Status != "active" {
		return false
	}
	return p.CurrentPeriodEnd == nil || p.CurrentPeriodEnd.After(now)
}

// SubscriptionStatusLoading is returned while entitlement cannot be resolved yet.
var SubscriptionStatusLoading = SubscriptionStatus{SubscriptionLoading: true}
