package rest

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"allaboutxrp/utils/errors"
	"allaboutxrp/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError maps err onto the JSON error body and logs it with request context.
func handleError(c echo.Context, err error, operation string) error {
	classified := errors.Classify(err, "rest", "RESTHandler", operation)
	enrichedErr := errors.EnrichWithContext(
		classified,
		"rest",
		"RESTHandler",
		operation,
		map[string]interface{}{
			"path":        c.Request().URL.Path,
			"method":      c.Request().Method,
			"remote_addr": c.Request().RemoteAddr,
			"user_agent":  c.Request().UserAgent(),
			"request_id":  c.Response().Header().Get("X-Request-ID"),
		},
	)

	log := logger.FromContext(c.Request().Context())
	fields := []any{
		"error_code", enrichedErr.Code,
		"operation", operation,
		"status", enrichedErr.HTTPStatusCode(),
		"error", enrichedErr.Error(),
	}
	if enrichedErr.HTTPStatusCode() >= http.StatusInternalServerError {
		log.Error("REST handler error", fields...)
	} else {
		log.Warn("REST handler error", fields...)
	}

	return c.JSON(enrichedErr.HTTPStatusCode(), enrichedErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message, parameter, value string) error {
	return handleError(c, errors.NewValidationContextError(
		message,
		"rest",
		"RESTHandler",
		"validate_"+parameter,
		map[string]interface{}{"parameter": parameter, "value": value},
	), "validate_"+parameter)
}

func setRetryAfter(c echo.Context, d time.Duration) {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
}

func parseBoolParam(raw string) (bool, error) {
	if strings.TrimSpace(raw) == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func parseNonNegativeIntWithDefault(raw string, def int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.ErrInvalidInput
	}
	return n, nil
}

func digestPageURL(siteURL, slug string) string {
	return strings.TrimRight(siteURL, "/") + "/digest/" + slug
}
