package rest

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"allaboutxrp/config"
	"allaboutxrp/di"
	"allaboutxrp/domain"
	"allaboutxrp/gateway/catalog_gateway"
	"allaboutxrp/usecase/catalog_usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
pages:
  - slug: what-is-xrp
    path: /learn/what-is-xrp
    title: What Is XRP?
    description: A plain-language introduction.
    date_published: 2025-01-15T00:00:00Z
    date_modified: 2025-06-01T00:00:00Z
    breadcrumbs:
      - name: Home
        url: https://allaboutxrp.com
      - name: What Is XRP?
    faq:
      - question: Is XRP a security?
        answer: A US court ruled programmatic sales were not.
faqs:
  - question: What is the XRP Ledger?
    answer: A public blockchain.
  - question: Who runs validators?
    answer: Anyone.
  - question: What's an escrow?
    answer: Time-locked XRP.
`

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Digest.SiteURL = "https://allaboutxrp.com"
	cfg.Subscription.RetryAfter = 2 * time.Second
	cfg.Auth.ViewerTokenHeader = "X-Viewer-Token"
	return cfg
}

func catalogComponents(t *testing.T) *di.ApplicationComponents {
	t.Helper()
	catalog, err := catalog_gateway.NewCatalogGatewayFromBytes([]byte(testCatalog), "https://allaboutxrp.com")
	require.NoError(t, err)
	return &di.ApplicationComponents{
		StructuredDataUsecase: catalog_usecase.NewStructuredDataUsecase(catalog, catalog.SiteURL()),
		FAQUsecase:            catalog_usecase.NewFAQUsecase(catalog),
		RobotsUsecase:         catalog_usecase.NewRobotsUsecase(catalog),
	}
}

func newContext(method, target string, viewer *domain.Viewer) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	if viewer != nil {
		req = req.WithContext(domain.SetViewer(req.Context(), viewer))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testDigest(slug string, weeks int) *domain.Digest {
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*weeks)
	return &domain.Digest{
		ID:          uuid.New(),
		Title:       "XRP Weekly " + slug,
		Slug:        slug,
		WeekStart:   start,
		WeekEnd:     start.AddDate(0, 0, 6),
		PublishedAt: start.AddDate(0, 0, 7),
		Content: domain.DigestContent{
			RawText: domain.Some("**Ripple** closed another deal this week."),
		},
		HTMLContent: domain.Some("<p>Ripple closed another deal this week.</p>"),
	}
}

func summaryOf(d *domain.Digest) domain.DigestSummary {
	return domain.DigestSummary{ID: d.ID, Title: d.Title, Slug: d.Slug, WeekStart: d.WeekStart, WeekEnd: d.WeekEnd, PublishedAt: d.PublishedAt}
}

type fakeCheck struct{ err error }

func (f fakeCheck) check(context.Context) error { return f.err }

