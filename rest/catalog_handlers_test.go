package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePageStructuredData(t *testing.T) {
	container := catalogComponents(t)

	c, rec := newContext(http.MethodGet, "/v1/pages/what-is-xrp/structured-data", nil)
	c.SetParamNames("slug")
	c.SetParamValues("what-is-xrp")

	require.NoError(t, handlePageStructuredData(container)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, mimeLDJSON, rec.Header().Get("Content-Type"))

	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	types := make([]string, 0, len(records))
	for _, r := range records {
		assert.Equal(t, "https://schema.org", r["@context"])
		types = append(types, r["@type"].(string))
	}
	assert.Equal(t, []string{"Article", "BreadcrumbList", "FAQPage", "WebPage"}, types)
}

func TestHandlePageStructuredData_UnknownPage(t *testing.T) {
	container := catalogComponents(t)

	c, rec := newContext(http.MethodGet, "/v1/pages/nope/structured-data", nil)
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	require.NoError(t, handlePageStructuredData(container)(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListFAQs(t *testing.T) {
	container := catalogComponents(t)

	c, rec := newContext(http.MethodGet, "/v1/faq", nil)
	require.NoError(t, handleListFAQs(container)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FAQListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.FAQs, 3)
	assert.Equal(t, "what-is-the-xrp-ledger", resp.FAQs[0].Slug)
	assert.Equal(t, "whats-an-escrow", resp.FAQs[2].Slug)
}

func TestHandleFAQ(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		slug        string
		wantStatus  int
		wantRelated int
	}{
		{name: "default related", target: "/v1/faq/who-runs-validators", slug: "who-runs-validators", wantStatus: http.StatusOK, wantRelated: 2},
		{name: "limited related", target: "/v1/faq/who-runs-validators?related=1", slug: "who-runs-validators", wantStatus: http.StatusOK, wantRelated: 1},
		{name: "bad related", target: "/v1/faq/who-runs-validators?related=x", slug: "who-runs-validators", wantStatus: http.StatusBadRequest},
		{name: "unknown", target: "/v1/faq/nothing-here", slug: "nothing-here", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := catalogComponents(t)
			c, rec := newContext(http.MethodGet, tt.target, nil)
			c.SetParamNames("slug")
			c.SetParamValues(tt.slug)

			require.NoError(t, handleFAQ(container)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp FAQResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Who runs validators?", resp.FAQ.Question)
			assert.Len(t, resp.Related, tt.wantRelated)
		})
	}
}

func TestHandleRobots(t *testing.T) {
	container := catalogComponents(t)

	c, rec := newContext(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, handleRobots(container)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	body := rec.Body.String()
	assert.Contains(t, body, "User-Agent: *\n")
	assert.Contains(t, body, "Disallow: /api/\n")
	assert.Contains(t, body, "User-Agent: ClaudeBot\n")
	assert.Contains(t, body, "Sitemap: https://allaboutxrp.com/sitemap.xml\n")
}
