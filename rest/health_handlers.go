package rest

import (
	"context"
	"net/http"
	"time"

	"allaboutxrp/di"
	"allaboutxrp/utils/logger"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

func registerHealthRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/health", handleHealth(container))
}

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		resp := HealthResponse{Status: "healthy", Checks: make(map[string]string, len(container.HealthChecks))}
		for _, hc := range container.HealthChecks {
			if err := hc.Check(ctx); err != nil {
				logger.FromContext(ctx).Warn("health check failed", "check", hc.Name, "error", err)
				resp.Status = "unhealthy"
				resp.Checks[hc.Name] = "down"
				continue
			}
			resp.Checks[hc.Name] = "ok"
		}

		if resp.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
