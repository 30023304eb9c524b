package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"2025-01-06", true},
		{"weekly-42", true},
		{"", false},
		{"Weekly-42", false},
		{"weekly--42", false},
		{"-weekly", false},
		{"weekly/42", false},
		{"weekly 42", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlug(tt.slug))
		})
	}
}

func TestDigest_Validate(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		d := Digest{Slug: "2025-01-06", WeekStart: start, WeekEnd: start.AddDate(0, 0, 6)}
		assert.NoError(t, d.Validate())
	})

	t.Run("single day period", func(t *testing.T) {
		d := Digest{Slug: "2025-01-06", WeekStart: start, WeekEnd: start}
		assert.NoError(t, d.Validate())
	})

	t.Run("bad slug", func(t *testing.T) {
		d := Digest{Slug: "", WeekStart: start, WeekEnd: start}
		assert.ErrorIs(t, d.Validate(), ErrInvalidSlug)
	})

	t.Run("inverted period", func(t *testing.T) {
		d := Digest{Slug: "x", WeekStart: start, WeekEnd: start.AddDate(0, 0, -1)}
		assert.ErrorIs(t, d.Validate(), ErrInvalidDigestPeriod)
	})
}

func TestSubscriptionStatus_State(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriptionStatus
		want   SubscriptionState
	}{
		{"auth loading with cached pro flag", SubscriptionStatus{Subscribed: true, AuthLoading: true}, SubscriptionStateLoading},
		{"subscription loading with cached pro flag", SubscriptionStatus{Subscribed: true, SubscriptionLoading: true}, SubscriptionStateLoading},
		{"both loading", SubscriptionStatus{AuthLoading: true, SubscriptionLoading: true}, SubscriptionStateLoading},
		{"subscribed", SubscriptionStatus{Subscribed: true}, SubscriptionStateSubscribed},
		{"not subscribed", SubscriptionStatus{}, SubscriptionStateNotSubscribed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.State())
		})
	}
}

func TestProSubscription_ActiveAt(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	assert.True(t, (&ProSubscription{Status: "active"}).ActiveAt(now))
	assert.True(t, (&ProSubscription{Status: "active", CurrentPeriodEnd: &future}).ActiveAt(now))
	assert.False(t, (&ProSubscription{Status: "active", CurrentPeriodEnd: &past}).ActiveAt(now))
	assert.False(t, (&ProSubscription{Status: "canceled"}).ActiveAt(now))
}
