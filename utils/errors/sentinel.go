package errors

import (
	"context"
	"errors"

	"allaboutxrp/domain"
)

var (
	ErrDatabaseUnavailable        = errors.New("database unavailable")
	ErrCacheUnavailable           = errors.New("cache unavailable")
	ErrRateLimitExceeded          = errors.New("rate limit exceeded")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
	ErrOperationTimeout           = errors.New("operation timeout")
	ErrInvalidInput               = errors.New("invalid input")
)

func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseUnavailable)
}

func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

func IsExternalServiceError(err error) bool {
	return errors.Is(err, ErrExternalServiceUnavailable)
}

// IsTimeoutError also matches context deadlines.
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrOperationTimeout) || errors.Is(err, context.DeadlineExceeded)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, domain.ErrInvalidSlug) ||
		errors.Is(err, domain.ErrInvalidDigestPeriod)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, domain.ErrDigestNotFound) ||
		errors.Is(err, domain.ErrPageNotFound) ||
		errors.Is(err, domain.ErrFAQNotFound) ||
		errors.Is(err, domain.ErrNoBillingCustomer)
}

func IsRetryableError(err error) bool {
	return IsRateLimitError(err) ||
		IsTimeoutError(err) ||
		IsExternalServiceError(err) ||
		errors.Is(err, domain.ErrDigestUnavailable)
}

// Classify turns a domain or infrastructure error into an AppContextError.
// An existing AppContextError is returned unchanged.
func Classify(err error, layer, component, operation string) *AppContextError {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case IsValidationError(err):
		return NewValidationContextError(err.Error(), layer, component, operation, map[string]interface{}{"cause": err.Error()})
	case IsNotFoundError(err):
		return NewNotFoundContextError(err.Error(), layer, component, operation, err, nil)
	case errors.Is(err, domain.ErrNotAuthenticated):
		return NewAuthContextError("Not authenticated", layer, component, operation, err, nil)
	case errors.Is(err, domain.ErrBillingNotConfigured):
		return NewUnavailableContextError("Stripe not configured yet", layer, component, operation, err, nil)
	case errors.Is(err, domain.ErrDigestUnavailable):
		return NewUnavailableContextError("digest temporarily unavailable", layer, component, operation, err, nil)
	case IsRateLimitError(err):
		return NewRateLimitContextError("rate limit exceeded", layer, component, operation, err, nil)
	case IsTimeoutError(err):
		return NewTimeoutContextError("operation timeout", layer, component, operation, err, nil)
	case IsExternalServiceError(err):
		return NewExternalAPIContextError("external service unavailable", layer, component, operation, err, nil)
	case IsDatabaseError(err):
		return NewDatabaseContextError("database unavailable", layer, component, operation, err, nil)
	default:
		return NewUnknownContextError("internal server error", layer, component, operation, err, nil)
	}
}
