package html_parser

import (
	"regexp"
	"strings"
)

const (
	PreviewWordLimit  = 200
	RawTextPreviewLen = 500
	RawTextExcerptLen = 2000
	excerptEllipsis   = "..."
)

var (
	mdHeader     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	mdBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	mdItalic     = regexp.MustCompile(`\*(.+?)\*`)
	mdQuote      = regexp.MustCompile(`(?m)^>\s*`)
	mdRule       = regexp.MustCompile(`(?m)^-{3,}$`)
	mdTableCells = regexp.MustCompile(`\|[^|]*\|`)
	mdBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes the markdown decorations a generated digest uses.
func StripMarkdown(raw string) string {
	s := mdHeader.ReplaceAllString(raw, "")
	s = mdBold.ReplaceAllString(s, "$1")
	s = mdItalic.ReplaceAllString(s, "$1")
	s = mdQuote.ReplaceAllString(s, "")
	s = mdRule.ReplaceAllString(s, "")
	s = mdTableCells.ReplaceAllString(s, "")
	s = mdBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// TruncateRunes cuts s to at most n characters.
func TruncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// Excerpt is TruncateRunes with an ellipsis appended when anything was cut.
func Excerpt(s string, n int) string {
	cut := TruncateRunes(s, n)
	if len(cut) < len(s) {
		return cut + excerptEllipsis
	}
	return s
}

// PreviewText flattens markup into whitespace-collapsed text of at most limit
// words. truncated reports whether words were dropped.
func PreviewText(raw string, limit int) (text string, truncated bool) {
	words := strings.Fields(plainText(raw))
	if len(words) <= limit {
		return strings.Join(words, " "), false
	}
	return strings.Join(words[:limit], " "), true
}
