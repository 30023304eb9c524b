package robots

import (
	"strings"
	"testing"

	"allaboutxrp/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	policy := domain.RobotsPolicy{
		Rules: []domain.RobotsRule{
			{UserAgents: []string{"*"}, Allow: []string{"/"}, Disallow: []string{"/api/"}},
			{UserAgents: []string{"GPTBot"}, Allow: []string{"/"}},
		},
		Sitemap: "https://allaboutxrp.com/sitemap.xml",
	}

	want := strings.Join([]string{
		"User-Agent: *",
		"Allow: /",
		"Disallow: /api/",
		"",
		"User-Agent: GPTBot",
		"Allow: /",
		"",
		"Sitemap: https://allaboutxrp.com/sitemap.xml",
		"",
	}, "\n")
	assert.Equal(t, want, Render(policy))
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(domain.RobotsPolicy{}))
}

func TestChecker_DefaultPolicy(t *testing.T) {
	checker, err := NewChecker(DefaultPolicy("https://allaboutxrp.com/"))
	require.NoError(t, err)

	assert.True(t, checker.Allowed("SomeBot", "/learn/what-is-xrp"))
	assert.False(t, checker.Allowed("SomeBot", "/api/stripe/portal"))
	assert.True(t, checker.Allowed("GPTBot", "/digest/2025-01-06"))
	assert.True(t, checker.Allowed("ClaudeBot", "/"))
	assert.Equal(t, []string{"https://allaboutxrp.com/sitemap.xml"}, checker.Sitemaps())
}

func TestDefaultPolicy_NamesCrawlers(t *testing.T) {
	policy := DefaultPolicy("https://allaboutxrp.com")

	require.Len(t, policy.Rules, 15)
	assert.Equal(t, []string{"*"}, policy.Rules[0].UserAgents)
	assert.Equal(t, []string{"CCBot"}, policy.Rules[14].UserAgents)
}
