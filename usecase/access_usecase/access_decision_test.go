package access_usecase

import (
	"strings"
	"testing"

	"allaboutxrp/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func richDigest() *domain.Digest {
	return &domain.Digest{
		Title: "Week 42",
		Slug:  "weekly-42",
		Content: domain.DigestContent{
			KeyNews:         domain.Some([]domain.KeyNewsItem{{Title: "ETF approved", Summary: "Spot XRP ETF goes live"}}),
			PriceChanges:    domain.Some(domain.PriceChanges{High: "$3.10", Notes: "Range bound"}),
			PricePrediction: domain.Some(domain.PricePrediction{Direction: "bullish", Reasoning: "Inflows"}),
			MacroAnalysis:   domain.Some([]string{"Fed holds", ""}),
			XRPOpen:         domain.Some(2.5),
			XRPClose:        domain.Some(2.75),
			XRPChangePct:    domain.Some(10.0),
			Sentiment:       "BULLISH",
		},
		HTMLContent: domain.Some("<p>SECRET FULL BODY</p>"),
	}
}

func TestRenderAccessDecision_LoadingNeverShowsBody(t *testing.T) {
	for _, status := range []domain.SubscriptionStatus{
		{AuthLoading: true},
		{SubscriptionLoading: true},
		{Subscribed: true, AuthLoading: true},
		{Subscribed: true, SubscriptionLoading: true},
		{Subscribed: true, AuthLoading: true, SubscriptionLoading: true},
	} {
		d := RenderAccessDecision(richDigest(), status)
		assert.Equal(t, domain.AccessLoading, d.Kind)
		assert.False(t, d.ShowsBody())
		assert.Nil(t, d.Paywall)
	}
}

func TestRenderAccessDecision_PaywallUsesStructuredPreview(t *testing.T) {
	d := RenderAccessDecision(richDigest(), domain.SubscriptionStatus{})

	assert.Equal(t, domain.AccessPaywall, d.Kind)
	assert.False(t, d.ShowsBody())
	require.NotNil(t, d.Paywall)
	assert.NotEmpty(t, d.Paywall.Preview)
	assert.NotContains(t, d.Paywall.Preview, "SECRET")
	assert.Equal(t, "ETF approved: Spot XRP ETF goes live Range bound Inflows Fed holds", d.Paywall.Preview)
	assert.Equal(t, "/pricing", d.Paywall.UpgradeURL)
	assert.Equal(t, "/digest/weekly-42", d.Paywall.SignInURL)
}

func TestRenderAccessDecision_PaywallPreviewTruncatesAt200Words(t *testing.T) {
	digest := &domain.Digest{Slug: "long", Content: domain.DigestContent{
		MacroAnalysis: domain.Some([]string{strings.Repeat("word ", 250)}),
	}}
	d := RenderAccessDecision(digest, domain.SubscriptionStatus{})
	require.NotNil(t, d.Paywall)
	assert.True(t, d.Paywall.Truncated)
	assert.Len(t, strings.Fields(d.Paywall.Preview), 200)
}

func TestRenderAccessDecision_SubscribedGetsHTML(t *testing.T) {
	d := RenderAccessDecision(richDigest(), domain.SubscriptionStatus{Subscribed: true})

	assert.Equal(t, domain.AccessFull, d.Kind)
	assert.Contains(t, d.HTML, "SECRET FULL BODY")
	assert.Empty(t, d.Sections)
	require.NotNil(t, d.Price)
	assert.Equal(t, "$2.5000", d.Price.Open)
	assert.Equal(t, "$2.7500", d.Price.Close)
	assert.Equal(t, "+10.00%", d.Price.ChangePct)
	assert.True(t, d.Price.Positive)
	require.NotNil(t, d.Sentiment)
	assert.Equal(t, "bullish", d.Sentiment.Value)
	assert.Equal(t, "Bullish", d.Sentiment.Label)
}

func TestRenderAccessDecision_SubscribedFallsBackToSections(t *testing.T) {
	digest := richDigest()
	digest.HTMLContent = domain.Some("   ")

	d := RenderAccessDecision(digest, domain.SubscriptionStatus{Subscribed: true})
	require.Len(t, d.Sections, 4)
	assert.Equal(t, domain.SectionKeyNews, d.Sections[0].Kind)
	assert.Equal(t, domain.SectionPriceAction, d.Sections[1].Kind)
	assert.Equal(t, domain.SectionPriceOutlook, d.Sections[2].Kind)
	assert.Equal(t, domain.SectionMacroWatch, d.Sections[3].Kind)
	assert.Equal(t, []string{"Fed holds", "No data available."}, d.Sections[3].Macro)
}

func TestBuildSections(t *testing.T) {
	t.Run("key news always present with message fallback", func(t *testing.T) {
		sections := BuildSections(domain.DigestContent{})
		require.Len(t, sections, 1)
		assert.Equal(t, "No content available for this digest.", sections[0].Fallback)
	})

	t.Run("key news falls back to raw text excerpt", func(t *testing.T) {
		raw := strings.Repeat("y", 2100)
		sections := BuildSections(domain.DigestContent{RawText: domain.Some(raw), KeyNews: domain.Some([]domain.KeyNewsItem{})})
		require.Len(t, sections, 1)
		assert.Equal(t, strings.Repeat("y", 2000)+"...", sections[0].Fallback)
	})

	t.Run("news items get placeholders", func(t *testing.T) {
		sections := BuildSections(domain.DigestContent{KeyNews: domain.Some([]domain.KeyNewsItem{{}})})
		require.Len(t, sections[0].News, 1)
		assert.Equal(t, "Untitled", sections[0].News[0].Title)
		assert.Equal(t, "No summary available.", sections[0].News[0].Summary)
	})

	t.Run("empty outlook and empty macro are omitted", func(t *testing.T) {
		sections := BuildSections(domain.DigestContent{
			PricePrediction: domain.Some(domain.PricePrediction{}),
			MacroAnalysis:   domain.Some([]string{}),
		})
		require.Len(t, sections, 1)
	})

	t.Run("present but empty price changes still render", func(t *testing.T) {
		sections := BuildSections(domain.DigestContent{PriceChanges: domain.Some(domain.PriceChanges{})})
		require.Len(t, sections, 2)
		assert.Equal(t, domain.SectionPriceAction, sections[1].Kind)
	})
}

func TestBuildPriceSummary(t *testing.T) {
	assert.Nil(t, BuildPriceSummary(domain.DigestContent{}))
	assert.Nil(t, BuildPriceSummary(domain.DigestContent{XRPOpen: domain.Some(0.0), XRPClose: domain.Some(2.0)}))

	down := BuildPriceSummary(domain.DigestContent{XRPOpen: domain.Some(2.0), XRPClose: domain.Some(1.9), XRPChangePct: domain.Some(-5.0)})
	require.NotNil(t, down)
	assert.Equal(t, "-5.00%", down.ChangePct)
	assert.False(t, down.Positive)

	flat := BuildPriceSummary(domain.DigestContent{XRPOpen: domain.Some(2.0), XRPClose: domain.Some(2.0), XRPChangePct: domain.Some(0.0)})
	require.NotNil(t, flat)
	assert.Empty(t, flat.ChangePct)
	assert.True(t, flat.Positive)
}

func TestBuildSentimentBadge(t *testing.T) {
	assert.Nil(t, BuildSentimentBadge(""))
	assert.Equal(t, &domain.SentimentBadge{Value: "bearish", Label: "Bearish"}, BuildSentimentBadge(" Bearish "))
	assert.Equal(t, &domain.SentimentBadge{Value: "neutral", Label: "Neutral"}, BuildSentimentBadge("sideways"))
}
