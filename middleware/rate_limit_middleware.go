package middleware

import (
	"math"
	"net/http"
	"strconv"

	"allaboutxrp/utils/metrics"
	"allaboutxrp/utils/rate_limiter"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(limiter *rate_limiter.KeyedLimiter, operation string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, wait := limiter.Allow(c.RealIP())
			if !allowed {
				metrics.RecordError(operation, "rate_limited")
				retryAfter := int(math.Ceil(wait.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
