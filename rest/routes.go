package rest

import (
	"strings"

	"allaboutxrp/config"
	"allaboutxrp/di"
	middleware_custom "allaboutxrp/middleware"
	"allaboutxrp/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID first so every log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recover early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// 4. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, cfg.Auth.ViewerTokenHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.WriteTimeout,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// 6. Logging
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 7. Compression last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	viewer := middleware_custom.NewViewerMiddleware(logger.Logger, cfg.Auth)
	v1 := e.Group("/v1", viewer.Middleware())

	registerHealthRoutes(v1, container)
	registerDigestRoutes(v1, container, cfg)
	registerBillingRoutes(v1, container, cfg)
	registerCatalogRoutes(e, v1, container)
}
