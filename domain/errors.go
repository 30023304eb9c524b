package domain

import (
	"errors"
	"fmt"
)

var (
	// digests
	ErrDigestNotFound      = errors.New("digest not found")
	ErrDigestUnavailable   = errors.New("digest unavailable")
	ErrDigestIndexFailed   = errors.New("digest index unavailable")
	ErrInvalidSlug         = errors.New("invalid slug")
	ErrInvalidDigestPeriod = errors.New("week_start must not be after week_end")

	// viewer and billing
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrNoBillingCustomer    = errors.New("no subscription found")
	ErrBillingNotConfigured = errors.New("stripe not configured yet")

	// catalog
	ErrPageNotFound = errors.New("page not found")
	ErrFAQNotFound  = errors.New("faq not found")
)

// BillingProviderError is a non-success answer from the billing provider.
type BillingProviderError struct {
	StatusCode int
	Message    string
}

func (e *BillingProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("billing provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("billing provider returned status %d: %s", e.StatusCode, e.Message)
}
