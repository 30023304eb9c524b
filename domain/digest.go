package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether slug is non-empty and URL-safe.
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// KeyNewsItem is one headline of a digest.
type KeyNewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source,omitempty"`
}

// PriceChanges is the weekly price snapshot. Values are preformatted strings.
type PriceChanges struct {
	High      string `json:"high,omitempty"`
	Low       string `json:"low,omitempty"`
	Close     string `json:"close,omitempty"`
	ChangePct string `json:"change_pct,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// PricePrediction is the outlook for the coming week.
type PricePrediction struct {
	Direction string `json:"direction,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

// DigestContent is the structured body of a digest as written by the generator.
type DigestContent struct {
	Title        string            `json:"title,omitempty"`
	RawText      Optional[string]  `json:"raw_text,omitzero"`
	XRPOpen      Optional[float64] `json:"xrp_open,omitzero"`
	XRPClose     Optional[float64] `json:"xrp_close,omitzero"`
	XRPChangePct Optional[float64] `json:"xrp_change_pct,omitzero"`
	Sentiment    string            `json:"sentiment,omitempty"`
	ModelUsed    string            `json:"model_used,omitempty"`
	WeekRange    string            `json:"week_range,omitempty"`

	KeyNews         Optional[[]KeyNewsItem]   `json:"key_news,omitzero"`
	PriceChanges    Optional[PriceChanges]    `json:"price_changes,omitzero"`
	PricePrediction Optional[PricePrediction] `json:"price_prediction,omitzero"`
	MacroAnalysis   Optional[[]string]        `json:"macro_analysis,omitzero"`
}

// Digest is a published weekly content bundle. It is read-only here.
type Digest struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	WeekStart   time.Time        `json:"week_start"`
	WeekEnd     time.Time        `json:"week_end"`
	Content     DigestContent    `json:"content"`
	HTMLContent Optional[string] `json:"html_content,omitzero"`
	PublishedAt time.Time        `json:"published_at"`
}

// Validate checks the slug and coverage-period invariants.
func (d *Digest) Validate() error {
	if !IsValidSlug(d.Slug) {
		return ErrInvalidSlug
	}
	if d.WeekEnd.Before(d.WeekStart) {
		return ErrInvalidDigestPeriod
	}
	return nil
}

// DisplayTitle falls back to a generic title for untitled digests.
func (d *Digest) DisplayTitle() string {
	if d.Title == "" {
		return "Weekly Digest"
	}
	return d.Title
}

// DigestSummary is a listing row: the digest without its body.
type DigestSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	WeekStart   time.Time `json:"week_start"`
	WeekEnd     time.Time `json:"week_end"`
	PublishedAt time.Time `json:"published_at"`
}

// DigestIndexEntry is the navigation projection of a digest.
type DigestIndexEntry struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	WeekStart time.Time `json:"-"`
}

// IndexEntry projects a summary onto its navigation entry.
func (s *DigestSummary) IndexEntry() DigestIndexEntry {
	return DigestIndexEntry{Slug: s.Slug, Title: s.Title, WeekStart: s.WeekStart}
}

// Adjacent holds the navigation pointers around a digest.
// Previous is the older digest, Next the newer one.
type Adjacent struct {
	Previous *DigestIndexEntry `json:"previous"`
	Next     *DigestIndexEntry `json:"next"`
}

// LoadOutcome is the terminal state of a digest load.
type LoadOutcome string

const (
	LoadOutcomeLoaded      LoadOutcome = "loaded"
	LoadOutcomeNotFound    LoadOutcome = "not_found"
	LoadOutcomeUnavailable LoadOutcome = "unavailable"
	LoadOutcomeInvalid     LoadOutcome = "invalid"
)

// DigestPage is the result of loading a digest together with its siblings.
type DigestPage struct {
	Digest              *Digest            `json:"digest"`
	Index               []DigestIndexEntry `json:"index"`
	Adjacent            Adjacent           `json:"adjacent"`
	NavigationAvailable bool               `json:"navigation_available"`
}
