package rest

import (
	"encoding/json"
	"time"

	"allaboutxrp/domain"
)

// DigestHeader is the always-visible part of a digest page.
type DigestHeader struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	WeekRange   string    `json:"week_range,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

type NavigationResponse struct {
	Available bool                      `json:"available"`
	Previous  *domain.DigestIndexEntry  `json:"previous"`
	Next      *domain.DigestIndexEntry  `json:"next"`
	Index     []domain.DigestIndexEntry `json:"index"`
}

type DigestPageResponse struct {
	Digest                DigestHeader             `json:"digest"`
	Access                domain.AccessDecision    `json:"access"`
	SubscriptionState     domain.SubscriptionState `json:"subscription_state"`
	CanManageSubscription bool                     `json:"can_manage_subscription"`
	Navigation            NavigationResponse       `json:"navigation"`
	ShareURL              string                   `json:"share_url"`
	StructuredData        json.RawMessage          `json:"structured_data"`
}

type DigestListResponse struct {
	Digests []domain.DigestSummary `json:"digests"`
}

type SubscriptionResponse struct {
	State                 domain.SubscriptionState `json:"state"`
	Subscribed            bool                     `json:"subscribed"`
	CanManageSubscription bool                     `json:"can_manage_subscription"`
}

type BillingPortalResponse struct {
	URL string `json:"url"`
}

type FAQListResponse struct {
	FAQs []domain.FAQItem `json:"faqs"`
}

type FAQResponse struct {
	FAQ     domain.FAQItem   `json:"faq"`
	Related []domain.FAQItem `json:"related"`
}

type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func newDigestHeader(d *domain.Digest) DigestHeader {
	return DigestHeader{
		ID:          d.ID.String(),
		Title:       d.DisplayTitle(),
		Slug:        d.Slug,
		WeekStart:   d.WeekStart,
		WeekEnd:     d.WeekEnd,
		WeekRange:   d.Content.WeekRange,
		PublishedAt: d.PublishedAt,
	}
}
