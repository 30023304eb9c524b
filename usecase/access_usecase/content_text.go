package access_usecase

import (
	"strings"

	"allaboutxrp/domain"
	"allaboutxrp/utils/html_parser"
)

// ContentToText flattens digest content for the paywall preview. Raw text
// wins when present; otherwise the structured parts are joined in order.
func ContentToText(content domain.DigestContent) string {
	if raw := content.RawText.OrZero(); raw != "" {
		return html_parser.TruncateRunes(html_parser.StripMarkdown(raw), html_parser.RawTextPreviewLen)
	}

	var parts []string
	if news, ok := content.KeyNews.Get(); ok {
		for _, n := range news {
			parts = append(parts, n.Title+": "+n.Summary)
		}
	}
	if pc, ok := content.PriceChanges.Get(); ok && pc.Notes != "" {
		parts = append(parts, pc.Notes)
	}
	if pp, ok := content.PricePrediction.Get(); ok && pp.Reasoning != "" {
		parts = append(parts, pp.Reasoning)
	}
	if macro, ok := content.MacroAnalysis.Get(); ok {
		parts = append(parts, macro...)
	}
	return strings.Join(parts, " ")
}
