package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"allaboutxrp/config"
	"allaboutxrp/domain"
	"allaboutxrp/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken    = errors.New("missing viewer token")
	errInvalidToken    = errors.New("invalid viewer token")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// ViewerClaims is the token minted by the auth service for a signed-in viewer.
type ViewerClaims struct {
	Email string `json:"email"`
	Sid   string `json:"sid"`
	jwt.RegisteredClaims
}

// ViewerMiddleware attaches the signed-in viewer to the request. Requests
// without a valid token continue anonymously.
type ViewerMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
	header   string
}

func NewViewerMiddleware(logger *slog.Logger, cfg config.AuthConfig) *ViewerMiddleware {
	if cfg.ViewerTokenSecret == "" && logger != nil {
		logger.Warn("VIEWER_TOKEN_SECRET not set, every viewer is anonymous")
	}
	return &ViewerMiddleware{
		logger:   logger,
		secret:   []byte(cfg.ViewerTokenSecret),
		issuer:   cfg.ViewerTokenIssuer,
		audience: cfg.ViewerTokenAudience,
		header:   cfg.ViewerTokenHeader,
	}
}

func (m *ViewerMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewer, err := m.viewerFromRequest(c)
			if err != nil {
				if !errors.Is(err, errMissingToken) && m.logger != nil {
					m.logger.Warn("viewer token rejected", "error", err, "path", c.Request().URL.Path)
				}
				return next(c)
			}

			ctx := domain.SetViewer(c.Request().Context(), viewer)
			ctx = context.WithValue(ctx, logger.UserIDKey, viewer.Subject)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (m *ViewerMiddleware) tokenFromRequest(c echo.Context) string {
	if token := c.Request().Header.Get(m.header); token != "" {
		return token
	}
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func (m *ViewerMiddleware) viewerFromRequest(c echo.Context) (*domain.Viewer, error) {
	tokenStr := m.tokenFromRequest(c)
	if tokenStr == "" {
		return nil, errMissingToken
	}
	if len(m.secret) == 0 {
		return nil, fmt.Errorf("%w: secret not configured", errInvalidToken)
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &ViewerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*ViewerClaims)
	if !ok || !parsed.Valid || claims.Email == "" {
		return nil, errInvalidToken
	}
	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}
	if !slices.Contains(claims.Audience, m.audience) {
		return nil, errInvalidAudience
	}

	return &domain.Viewer{Subject: claims.Subject, Email: claims.Email, SessionID: claims.Sid}, nil
}
