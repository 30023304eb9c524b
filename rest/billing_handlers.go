package rest

import (
	"net/http"

	"allaboutxrp/config"
	"allaboutxrp/di"
	"allaboutxrp/domain"
	middleware_custom "allaboutxrp/middleware"

	"github.com/labstack/echo/v4"
)

func registerBillingRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/me/subscription", handleMySubscription(container, cfg))
	v1.POST("/billing/portal", handleBillingPortal(container),
		middleware_custom.RateLimitMiddleware(container.BillingLimiter, "billing_portal"))
}

func handleMySubscription(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		status := container.AccessUsecase.Status(ctx, domain.ViewerFromContext(ctx))

		c.Response().Header().Set("Cache-Control", "private, no-store")
		if status.State() == domain.SubscriptionStateLoading {
			setRetryAfter(c, cfg.Subscription.RetryAfter)
		}
		return c.JSON(http.StatusOK, SubscriptionResponse{
			State:                 status.State(),
			Subscribed:            status.State() == domain.SubscriptionStateSubscribed,
			CanManageSubscription: status.CanManageSubscription(),
		})
	}
}

func handleBillingPortal(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		portalURL, err := container.BillingPortalUsecase.Execute(ctx, domain.ViewerFromContext(ctx), c.Request().Header.Get(echo.HeaderOrigin))
		if err != nil {
			return handleError(c, err, "billing_portal")
		}
		return c.JSON(http.StatusOK, BillingPortalResponse{URL: portalURL})
	}
}
