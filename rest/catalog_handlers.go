package rest

import (
	"net/http"

	"allaboutxrp/di"
	"allaboutxrp/usecase/catalog_usecase"
	"allaboutxrp/utils/structured_data"

	"github.com/labstack/echo/v4"
)

const mimeLDJSON = "application/ld+json"

func registerCatalogRoutes(e *echo.Echo, v1 *echo.Group, container *di.ApplicationComponents) {
	e.GET("/robots.txt", handleRobots(container))
	v1.GET("/pages/:slug/structured-data", handlePageStructuredData(container))
	v1.GET("/faq", handleListFAQs(container))
	v1.GET("/faq/:slug", handleFAQ(container))
}

func handlePageStructuredData(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := container.StructuredDataUsecase.ForPage(c.Request().Context(), c.Param("slug"))
		if err != nil {
			return handleError(c, err, "page_structured_data")
		}
		body, err := structured_data.Render(records...)
		if err != nil {
			return handleError(c, err, "render_structured_data")
		}
		return c.Blob(http.StatusOK, mimeLDJSON, body)
	}
}

func handleListFAQs(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := container.FAQUsecase.List(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_faqs")
		}
		return c.JSON(http.StatusOK, FAQListResponse{FAQs: items})
	}
}

func handleFAQ(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		count, err := parseNonNegativeIntWithDefault(c.QueryParam("related"), catalog_usecase.DefaultRelatedFAQs)
		if err != nil {
			return handleValidationError(c, "related must be a non-negative integer", "related", c.QueryParam("related"))
		}

		item, related, err := container.FAQUsecase.Find(c.Request().Context(), c.Param("slug"), count)
		if err != nil {
			return handleError(c, err, "find_faq")
		}
		return c.JSON(http.StatusOK, FAQResponse{FAQ: item, Related: related})
	}
}

func handleRobots(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := container.RobotsUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "robots")
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		return c.String(http.StatusOK, body)
	}
}
