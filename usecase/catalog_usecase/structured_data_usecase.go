package catalog_usecase

import (
	"context"
	"strings"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/port/catalog_port"
	"allaboutxrp/utils/structured_data"
)

const isoDate = "2006-01-02"

// StructuredDataUsecase assembles JSON-LD for catalog pages and digests.
type StructuredDataUsecase struct {
	catalog catalog_port.CatalogPort
	siteURL string
}

func NewStructuredDataUsecase(catalog catalog_port.CatalogPort, siteURL string) *StructuredDataUsecase {
	return &StructuredDataUsecase{catalog: catalog, siteURL: strings.TrimRight(siteURL, "/")}
}

// ForPage returns Article and BreadcrumbList, FAQPage and HowTo when the
// page carries them, and the speakable WebPage last.
func (u *StructuredDataUsecase) ForPage(ctx context.Context, slug string) ([]structured_data.Record, error) {
	page, err := u.catalog.FindPage(ctx, slug)
	if err != nil {
		return nil, err
	}
	return PageRecords(u.siteURL, page), nil
}

// PageRecords is the pure assembly behind ForPage.
func PageRecords(siteURL string, page *domain.Page) []structured_data.Record {
	pageURL := siteURL + page.Path

	records := []structured_data.Record{
		structured_data.BuildArticle(structured_data.ArticleInput{
			Headline:      page.Title,
			Description:   page.Description,
			URL:           pageURL,
			DatePublished: formatDate(page.DatePublished),
			DateModified:  formatDate(modifiedOrPublished(page.DateModified, page.DatePublished)),
			Image:         page.Image,
		}),
		structured_data.BuildBreadcrumb(breadcrumbSegments(page.Breadcrumbs)),
	}

	if len(page.FAQ) > 0 {
		pairs := make([]structured_data.FAQPair, len(page.FAQ))
		for i, qa := range page.FAQ {
			pairs[i] = structured_data.FAQPair{Question: qa.Question, Answer: qa.Answer}
		}
		records = append(records, structured_data.BuildFAQ(pairs))
	}
	if len(page.HowTo) > 0 {
		steps := make([]structured_data.HowToStepInput, len(page.HowTo))
		for i, s := range page.HowTo {
			steps[i] = structured_data.HowToStepInput{Name: s.Name, Text: s.Text}
		}
		records = append(records, structured_data.BuildHowTo(structured_data.HowToInput{
			Name:        page.Title,
			Description: page.Description,
			URL:         pageURL,
			Steps:       steps,
		}))
	}
	return append(records, structured_data.BuildSpeakable(structured_data.SpeakableInput{URL: pageURL, Selectors: page.Speakable}))
}

// DigestRecords is the Article and BreadcrumbList pair for a digest page.
func DigestRecords(siteURL string, digest *domain.Digest) []structured_data.Record {
	siteURL = strings.TrimRight(siteURL, "/")
	pageURL := siteURL + "/digest/" + digest.Slug

	weekRange := digest.Content.WeekRange
	if weekRange == "" {
		weekRange = formatDate(digest.WeekStart) + " to " + formatDate(digest.WeekEnd)
	}
	description := "Weekly XRP intelligence digest, " + weekRange + "."

	return []structured_data.Record{
		structured_data.BuildArticle(structured_data.ArticleInput{
			Headline:      digest.DisplayTitle(),
			Description:   description,
			URL:           pageURL,
			DatePublished: formatDate(digest.PublishedAt),
			DateModified:  formatDate(digest.PublishedAt),
		}),
		structured_data.BuildBreadcrumb([]structured_data.BreadcrumbSegment{
			{Name: "Home", URL: siteURL},
			{Name: "Digest", URL: siteURL + "/digest"},
			{Name: digest.DisplayTitle()},
		}),
	}
}

func breadcrumbSegments(crumbs []domain.Breadcrumb) []structured_data.BreadcrumbSegment {
	segments := make([]structured_data.BreadcrumbSegment, len(crumbs))
	for i, c := range crumbs {
		segments[i] = structured_data.BreadcrumbSegment{Name: c.Name, URL: c.URL}
	}
	return segments
}

func modifiedOrPublished(modified, published time.Time) time.Time {
	if modified.IsZero() {
		return published
	}
	return modified
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoDate)
}
