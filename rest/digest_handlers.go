package rest

import (
	"net/http"

	"allaboutxrp/config"
	"allaboutxrp/di"
	"allaboutxrp/domain"
	"allaboutxrp/gateway/share_gateway"
	"allaboutxrp/usecase/catalog_usecase"
	"allaboutxrp/utils/structured_data"

	"github.com/labstack/echo/v4"
)

func registerDigestRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	v1.GET("/digests", handleListDigests(container))
	v1.GET("/digests/:slug", handleDigestPage(container, cfg))
	v1.GET("/digests/:slug/share", handleShareDigest(container, cfg))
}

func handleListDigests(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		summaries, err := container.ListDigestsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_digests")
		}
		return c.JSON(http.StatusOK, DigestListResponse{Digests: summaries})
	}
}

// handleDigestPage returns the header unconditionally. The body is gated by
// the access decision; a loading entitlement asks the client to retry.
func handleDigestPage(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		slug := c.Param("slug")

		page, err := container.LoadDigestUsecase.Execute(ctx, slug)
		if err != nil {
			return handleError(c, err, "load_digest")
		}

		viewer := domain.ViewerFromContext(ctx)
		decision, status := container.AccessUsecase.Execute(ctx, page.Digest, viewer)

		siteURL := cfg.Digest.SiteURL
		jsonLD, err := structured_data.Render(catalog_usecase.DigestRecords(siteURL, page.Digest)...)
		if err != nil {
			return handleError(c, err, "render_structured_data")
		}

		index := page.Index
		if index == nil {
			index = []domain.DigestIndexEntry{}
		}
		resp := DigestPageResponse{
			Digest:                newDigestHeader(page.Digest),
			Access:                decision,
			SubscriptionState:     status.State(),
			CanManageSubscription: status.CanManageSubscription(),
			Navigation: NavigationResponse{
				Available: page.NavigationAvailable,
				Previous:  page.Adjacent.Previous,
				Next:      page.Adjacent.Next,
				Index:     index,
			},
			ShareURL:       digestPageURL(siteURL, page.Digest.Slug),
			StructuredData: jsonLD,
		}

		c.Response().Header().Set("Cache-Control", "private, no-store")
		c.Response().Header().Set("Vary", "Authorization, "+cfg.Auth.ViewerTokenHeader)
		if decision.Kind == domain.AccessLoading {
			setRetryAfter(c, cfg.Subscription.RetryAfter)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func handleShareDigest(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		native, err := parseBoolParam(c.QueryParam("native"))
		if err != nil {
			return handleValidationError(c, "native must be a boolean", "native", c.QueryParam("native"))
		}

		ctx := c.Request().Context()
		page, err := container.LoadDigestUsecase.Execute(ctx, c.Param("slug"))
		if err != nil {
			return handleError(c, err, "share_digest")
		}

		platform := share_gateway.NewIntentPlatform(native)
		result := container.ShareUsecase.Execute(ctx, page.Digest, digestPageURL(cfg.Digest.SiteURL, page.Digest.Slug), platform)
		return c.JSON(http.StatusOK, result)
	}
}
