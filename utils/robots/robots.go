// Package robots renders robots.txt from a policy and answers crawl checks against it.
package robots

import (
	"fmt"
	"strings"

	"allaboutxrp/domain"

	"github.com/temoto/robotstxt"
)

// Render writes policy in robots.txt syntax. Groups keep their order.
func Render(policy domain.RobotsPolicy) string {
	var b strings.Builder
	for i, rule := range policy.Rules {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, ua := range rule.UserAgents {
			fmt.Fprintf(&b, "User-Agent: %s\n", ua)
		}
		for _, p := range rule.Allow {
			fmt.Fprintf(&b, "Allow: %s\n", p)
		}
		for _, p := range rule.Disallow {
			fmt.Fprintf(&b, "Disallow: %s\n", p)
		}
	}
	if policy.Sitemap != "" {
		if len(policy.Rules) > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Sitemap: %s\n", policy.Sitemap)
	}
	return b.String()
}

// Checker evaluates paths against a rendered policy.
type Checker struct {
	data *robotstxt.RobotsData
}

// NewChecker parses the rendered policy. A parse failure means Render
// produced invalid output.
func NewChecker(policy domain.RobotsPolicy) (*Checker, error) {
	data, err := robotstxt.FromString(Render(policy))
	if err != nil {
		return nil, fmt.Errorf("parse robots policy: %w", err)
	}
	return &Checker{data: data}, nil
}

// Allowed reports whether agent may crawl path.
func (c *Checker) Allowed(agent, path string) bool {
	return c.data.TestAgent(path, agent)
}

// Sitemaps lists the sitemap URLs announced by the policy.
func (c *Checker) Sitemaps() []string {
	return c.data.Sitemaps
}

// DefaultPolicy is the site policy: everything but the API is crawlable and
// the AI and search crawlers are named explicitly.
func DefaultPolicy(siteURL string) domain.RobotsPolicy {
	crawlers := []string{
		"GPTBot", "ChatGPT-User", "PerplexityBot", "ClaudeBot", "Applebot-Extended",
		"cohere-ai", "Googlebot", "Bingbot", "Bytespider", "Meta-ExternalAgent",
		"anthropic-ai", "OAI-SearchBot", "YouBot", "CCBot",
	}
	rules := []domain.RobotsRule{{UserAgents: []string{"*"}, Allow: []string{"/"}, Disallow: []string{"/api/"}}}
	for _, c := range crawlers {
		rules = append(rules, domain.RobotsRule{UserAgents: []string{c}, Allow: []string{"/"}})
	}
	return domain.RobotsPolicy{
		Rules:   rules,
		Sitemap: strings.TrimRight(siteURL, "/") + "/sitemap.xml",
	}
}
