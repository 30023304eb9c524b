package catalog_usecase

import (
	"regexp"
	"strings"
)

var (
	apostrophes  = strings.NewReplacer("'", "", "’", "", "‘", "")
	nonSlugRunes = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a question into its URL slug.
func Slugify(question string) string {
	s := apostrophes.Replace(strings.ToLower(question))
	s = nonSlugRunes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
