package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
site_url: https://allaboutxrp.com
pages:
  - slug: how-to-buy-xrp-safely
    path: /answers/how-to-buy-xrp-safely
    title: How to Buy XRP Safely
    description: Step by step.
    date_published: 2026-02-01T00:00:00Z
    breadcrumbs:
      - name: Home
        url: https://allaboutxrp.com
      - name: How to Buy XRP Safely
    howto:
      - name: Pick an exchange
        text: Choose a regulated exchange.
      - name: Withdraw
        text: Move XRP to your own wallet.
faqs:
  - question: What is XRP?
    answer: The native asset of the XRP Ledger.
`

const testDigestJSON = `{
  "id": "4f1c2b7e-8a52-4b8e-9d0e-0d6f7a1b2c3d",
  "title": "XRP Weekly: ETF Week",
  "slug": "2026-03-02",
  "week_start": "2026-03-02T00:00:00Z",
  "week_end": "2026-03-08T00:00:00Z",
  "published_at": "2026-03-09T00:00:00Z",
  "content": {
    "raw_text": "## ETF filings\nThree issuers amended their filings.",
    "xrp_open": 2.1,
    "xrp_close": 2.35,
    "xrp_change_pct": 11.9,
    "sentiment": "bullish",
    "key_news": [{"title": "ETF filings", "summary": "Three issuers amended their filings."}]
  }
}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	catalog := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(catalog, []byte(testCatalog), 0o600))

	cfgFile = ""
	catalogPath = ""
	noColor = false
	require.NoError(t, pagesCmd.Flags().Set("json", "false"))
	require.NoError(t, schemaCmd.Flags().Set("html", "false"))
	for _, f := range []string{"json", "subscribed", "loading"} {
		require.NoError(t, previewCmd.Flags().Set(f, "false"))
	}
	require.NoError(t, robotsCmd.Flags().Set("check", ""))
	require.NoError(t, robotsCmd.Flags().Set("agent", "*"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(append([]string{"--catalog", catalog, "--no-color"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeDigest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digest.json")
	require.NoError(t, os.WriteFile(path, []byte(testDigestJSON), 0o600))
	return path
}

func TestPages_Table(t *testing.T) {
	out, err := runCLI(t, "pages")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog Pages")
	assert.Contains(t, out, "how-to-buy-xrp-safely")
	assert.Contains(t, out, "1 pages, 1 FAQ entries")
}

func TestPages_JSON(t *testing.T) {
	out, err := runCLI(t, "pages", "--json")
	require.NoError(t, err)

	var pages []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, "how-to-buy-xrp-safely", pages[0]["slug"])
}

func TestSchema(t *testing.T) {
	out, err := runCLI(t, "schema", "how-to-buy-xrp-safely")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	types := make([]string, 0, len(records))
	for _, r := range records {
		types = append(types, r["@type"].(string))
	}
	assert.Equal(t, []string{"Article", "BreadcrumbList", "HowTo", "WebPage"}, types)
}

func TestSchema_HTML(t *testing.T) {
	out, err := runCLI(t, "schema", "how-to-buy-xrp-safely", "--html")
	require.NoError(t, err)
	assert.Equal(t, 4, bytes.Count([]byte(out), []byte(`<script type="application/ld+json">`)))
}

func TestSchema_UnknownPage(t *testing.T) {
	_, err := runCLI(t, "schema", "missing")
	assert.Error(t, err)
}

func TestRobots(t *testing.T) {
	out, err := runCLI(t, "robots")
	require.NoError(t, err)
	assert.Contains(t, out, "Disallow: /api/")
	assert.Contains(t, out, "Sitemap: https://allaboutxrp.com/sitemap.xml")
}

func TestRobots_Check(t *testing.T) {
	out, err := runCLI(t, "robots", "--check", "/api/digest", "--agent", "SomeCrawler")
	require.NoError(t, err)
	assert.Contains(t, out, "[blocked] /api/digest")

	out, err = runCLI(t, "robots", "--check", "/digest/2026-03-02", "--agent", "GPTBot")
	require.NoError(t, err)
	assert.Contains(t, out, "[allowed]")
}

func TestPreview(t *testing.T) {
	digest := writeDigest(t)

	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{name: "anonymous", args: []string{"preview", digest}, wants: []string{"[paywall]", "ETF filings Three issuers amended their filings.", "upgrade: /pricing"}},
		{name: "subscribed", args: []string{"preview", digest, "--subscribed"}, wants: []string{"[full]", "price: $2.1000 -> $2.3500 +11.90%", "[bullish]", "Key News"}},
		{name: "loading", args: []string{"preview", digest, "--subscribed", "--loading"}, wants: []string{"[loading]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.wants {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPreview_JSONNeverLeaksBodyToAnonymous(t *testing.T) {
	out, err := runCLI(t, "preview", writeDigest(t), "--json")
	require.NoError(t, err)

	var decision map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decision))
	assert.Equal(t, "paywall", decision["kind"])
	assert.NotContains(t, decision, "sections")
	assert.NotContains(t, decision, "html")
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "xrpctl 1.2.3\n", buf.String())
}
