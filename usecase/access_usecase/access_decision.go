package access_usecase

import (
	"fmt"
	"strings"

	"allaboutxrp/domain"
	"allaboutxrp/utils/html_parser"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	UpgradePath = "/pricing"

	untitledNews    = "Untitled"
	noSummary       = "No summary available."
	noMacroData     = "No data available."
	noDigestContent = "No content available for this digest."
)

var knownSentiments = map[string]bool{"bullish": true, "bearish": true, "neutral": true}

var titleCaser = cases.Title(language.English)

// RenderAccessDecision gates a digest for one entitlement state. Nothing
// gated is attached while the state is loading, and a paywall only ever
// carries a preview derived from structured content.
func RenderAccessDecision(digest *domain.Digest, status domain.SubscriptionStatus) domain.AccessDecision {
	switch status.State() {
	case domain.SubscriptionStateLoading:
		return domain.AccessDecision{Kind: domain.AccessLoading}
	case domain.SubscriptionStateNotSubscribed:
		return domain.AccessDecision{Kind: domain.AccessPaywall, Paywall: buildPaywall(digest)}
	}

	decision := domain.AccessDecision{
		Kind:      domain.AccessFull,
		Price:     BuildPriceSummary(digest.Content),
		Sentiment: BuildSentimentBadge(digest.Content.Sentiment),
	}
	if raw, ok := digest.HTMLContent.Get(); ok && strings.TrimSpace(raw) != "" {
		if cleaned := html_parser.CleanDigestHTML(raw); cleaned != "" {
			decision.HTML = cleaned
			return decision
		}
	}
	decision.Sections = BuildSections(digest.Content)
	return decision
}

func buildPaywall(digest *domain.Digest) *domain.Paywall {
	preview, truncated := html_parser.PreviewText(ContentToText(digest.Content), html_parser.PreviewWordLimit)
	return &domain.Paywall{
		Preview:    preview,
		Truncated:  truncated,
		UpgradeURL: UpgradePath,
		SignInURL:  "/digest/" + digest.Slug,
	}
}

// BuildSections lays out the structured body. Key News is always present.
func BuildSections(content domain.DigestContent) []domain.Section {
	sections := []domain.Section{buildKeyNews(content)}

	if pc, ok := content.PriceChanges.Get(); ok {
		sections = append(sections, domain.Section{Kind: domain.SectionPriceAction, Heading: "Price Action", Price: &pc})
	}
	if pp, ok := content.PricePrediction.Get(); ok && (pp.Direction != "" || pp.Reasoning != "") {
		sections = append(sections, domain.Section{Kind: domain.SectionPriceOutlook, Heading: "Price Outlook", Outlook: &pp})
	}
	if macro, ok := content.MacroAnalysis.Get(); ok && len(macro) > 0 {
		items := make([]string, len(macro))
		for i, m := range macro {
			if m == "" {
				m = noMacroData
			}
			items[i] = m
		}
		sections = append(sections, domain.Section{Kind: domain.SectionMacroWatch, Heading: "Macro Watch", Macro: items})
	}
	return sections
}

func buildKeyNews(content domain.DigestContent) domain.Section {
	section := domain.Section{Kind: domain.SectionKeyNews, Heading: "Key News"}

	if news, ok := content.KeyNews.Get(); ok && len(news) > 0 {
		section.News = make([]domain.KeyNewsItem, len(news))
		for i, n := range news {
			if n.Title == "" {
				n.Title = untitledNews
			}
			if n.Summary == "" {
				n.Summary = noSummary
			}
			section.News[i] = n
		}
		return section
	}
	if raw := content.RawText.OrZero(); raw != "" {
		section.Fallback = html_parser.Excerpt(raw, html_parser.RawTextExcerptLen)
		return section
	}
	section.Fallback = noDigestContent
	return section
}

// BuildPriceSummary returns nil unless both open and close are positive.
func BuildPriceSummary(content domain.DigestContent) *domain.PriceSummary {
	openPx, closePx := content.XRPOpen.OrZero(), content.XRPClose.OrZero()
	if openPx <= 0 || closePx <= 0 {
		return nil
	}

	summary := &domain.PriceSummary{
		Open:  fmt.Sprintf("$%.4f", openPx),
		Close: fmt.Sprintf("$%.4f", closePx),
	}
	if pct, ok := content.XRPChangePct.Get(); ok {
		summary.Positive = pct >= 0
		if pct != 0 {
			sign := ""
			if pct > 0 {
				sign = "+"
			}
			summary.ChangePct = fmt.Sprintf("%s%.2f%%", sign, pct)
		}
	}
	return summary
}

// BuildSentimentBadge maps unknown moods to neutral. Empty means no badge.
func BuildSentimentBadge(sentiment string) *domain.SentimentBadge {
	value := strings.ToLower(strings.TrimSpace(sentiment))
	if value == "" {
		return nil
	}
	if !knownSentiments[value] {
		value = "neutral"
	}
	return &domain.SentimentBadge{Value: value, Label: titleCaser.String(value)}
}
