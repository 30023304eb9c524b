package html_parser

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var (
	zeroPriceLine  = regexp.MustCompile(`^XRP\s*\$0(?:\.0*)?(?:\s|→|$)`)
	ruleParagraph  = regexp.MustCompile(`^-{3,}$`)
	dashCell       = regexp.MustCompile(`^-+$`)
	leadingQuoteGT = regexp.MustCompile(`^\s*&gt;\s*`)
)

// SanitizeHTML keeps the structural tags a digest body needs and drops everything else.
func SanitizeHTML(raw string) string {
	p := bluemonday.UGCPolicy()
	p.AllowElements("section", "div", "p", "span", "br", "hr", "h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code", "b", "strong", "i", "em", "u", "a",
		"table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return p.Sanitize(raw)
}

// CleanDigestHTML normalises a generated digest body for display: the baked-in
// header and zero price line are dropped, "---" paragraphs become rules,
// pipe rows become tables, stray list items get a list and "&gt;" paragraphs
// become quotes. The result is sanitised.
func CleanDigestHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return SanitizeHTML(raw)
	}

	removeBakedHeader(doc)
	removeZeroPriceLines(doc)
	convertRuleParagraphs(doc)
	convertPipeTables(doc)
	wrapOrphanListItems(doc)
	convertQuoteParagraphs(doc)

	body, err := doc.Find("body").Html()
	if err != nil {
		return SanitizeHTML(raw)
	}
	return strings.TrimSpace(SanitizeHTML(body))
}

func removeBakedHeader(doc *goquery.Document) {
	doc.Find("div[style*='border-bottom']").First().Remove()
}

func removeZeroPriceLines(doc *goquery.Document) {
	doc.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return zeroPriceLine.MatchString(strings.TrimSpace(p.Text()))
	}).Remove()
}

func convertRuleParagraphs(doc *goquery.Document) {
	doc.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return ruleParagraph.MatchString(strings.TrimSpace(p.Text()))
	}).ReplaceWithHtml("<hr>")
}

func isEmptyDiv(s *goquery.Selection) bool {
	return goquery.NodeName(s) == "div" && strings.TrimSpace(s.Text()) == "" && s.Children().Length() == 0
}

func isPipeRow(s *goquery.Selection) bool {
	if s.Length() == 0 || goquery.NodeName(s) != "p" {
		return false
	}
	text := strings.TrimSpace(s.Text())
	return len(text) > 1 && strings.HasPrefix(text, "|") && strings.HasSuffix(text, "|")
}

func isListItem(s *goquery.Selection) bool {
	return s.Length() > 0 && goquery.NodeName(s) == "li"
}

// previousContent is the previous element sibling, skipping empty spacer divs.
func previousContent(s *goquery.Selection) *goquery.Selection {
	prev := s.Prev()
	for prev.Length() > 0 && isEmptyDiv(prev) {
		prev = prev.Prev()
	}
	return prev
}

// collectRun gathers start and the following siblings accepted by match,
// together with the spacer divs between them.
func collectRun(start *goquery.Selection, match func(*goquery.Selection) bool) (members, spacers []*goquery.Selection) {
	members = append(members, start)
	var pending []*goquery.Selection
	for next := start.Next(); next.Length() > 0; next = next.Next() {
		switch {
		case match(next):
			spacers = append(spacers, pending...)
			pending = nil
			members = append(members, next)
		case isEmptyDiv(next):
			pending = append(pending, next)
		default:
			return members, spacers
		}
	}
	return members, spacers
}

func pipeCells(p *goquery.Selection) []string {
	inner, _ := p.Html()
	inner = strings.TrimSpace(inner)
	var cells []string
	for _, c := range strings.Split(inner, "|") {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !dashCell.MatchString(c) {
			return false
		}
	}
	return true
}

func buildTable(rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range rows[0] {
		b.WriteString("<th>" + cell + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows[1:] {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + cell + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func convertPipeTables(doc *goquery.Document) {
	var starts []*goquery.Selection
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if isPipeRow(p) && !isPipeRow(previousContent(p)) {
			starts = append(starts, p)
		}
	})

	for _, start := range starts {
		members, spacers := collectRun(start, isPipeRow)

		var rows [][]string
		for _, m := range members {
			cells := pipeCells(m)
			if len(cells) == 0 || isSeparatorRow(cells) {
				continue
			}
			rows = append(rows, cells)
		}
		if len(rows) == 0 {
			continue
		}

		start.BeforeHtml(buildTable(rows))
		for _, s := range append(members, spacers...) {
			s.Remove()
		}
	}
}

func wrapOrphanListItems(doc *goquery.Document) {
	var starts []*goquery.Selection
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		parent := goquery.NodeName(li.Parent())
		if parent == "ul" || parent == "ol" {
			return
		}
		if !isListItem(previousContent(li)) {
			starts = append(starts, li)
		}
	})

	for _, start := range starts {
		members, spacers := collectRun(start, isListItem)
		for _, s := range spacers {
			s.Remove()
		}
		start.BeforeHtml("<ul></ul>")
		list := start.Prev()
		for _, m := range members {
			list.AppendSelection(m)
		}
	}
}

func convertQuoteParagraphs(doc *goquery.Document) {
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		inner, err := p.Html()
		if err != nil || !leadingQuoteGT.MatchString(inner) {
			return
		}
		p.SetHtml(leadingQuoteGT.ReplaceAllString(inner, ""))
		p.WrapHtml("<blockquote></blockquote>")
	})
}

// plainText strips all markup, leaving a space where each tag was.
func plainText(raw string) string {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return html.UnescapeString(p.Sanitize(raw))
}
