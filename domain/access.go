package domain

// AccessKind is what the digest page body shows.
type AccessKind string

const (
	AccessLoading AccessKind = "loading"
	AccessPaywall AccessKind = "paywall"
	AccessFull    AccessKind = "full"
)

// SectionKind names a structured section of a digest body.
type SectionKind string

const (
	SectionKeyNews      SectionKind = "key_news"
	SectionPriceAction  SectionKind = "price_action"
	SectionPriceOutlook SectionKind = "price_outlook"
	SectionMacroWatch   SectionKind = "macro_watch"
)

// Section is one rendered block of a subscribed digest body.
// Exactly one of the payload fields is set, matching Kind.
type Section struct {
	Kind     SectionKind      `json:"kind"`
	Heading  string           `json:"heading"`
	News     []KeyNewsItem    `json:"news,omitempty"`
	Fallback string           `json:"fallback,omitempty"`
	Price    *PriceChanges    `json:"price,omitempty"`
	Outlook  *PricePrediction `json:"outlook,omitempty"`
	Macro    []string         `json:"macro,omitempty"`
}

// PriceSummary is the weekly open/close card.
type PriceSummary struct {
	Open      string `json:"open"`
	Close     string `json:"close"`
	ChangePct string `json:"change_pct,omitempty"`
	Positive  bool   `json:"positive"`
}

// SentimentBadge labels the weekly market mood.
type SentimentBadge struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Paywall carries the preview and the upgrade call to action.
type Paywall struct {
	Preview    string `json:"preview"`
	Truncated  bool   `json:"truncated"`
	UpgradeURL string `json:"upgrade_url"`
	SignInURL  string `json:"sign_in_url"`
}

// AccessDecision is the outcome of gating a digest for one viewer.
type AccessDecision struct {
	Kind      AccessKind      `json:"kind"`
	HTML      string          `json:"html,omitempty"`
	Sections  []Section       `json:"sections,omitempty"`
	Paywall   *Paywall        `json:"paywall,omitempty"`
	Price     *PriceSummary   `json:"price,omitempty"`
	Sentiment *SentimentBadge `json:"sentiment,omitempty"`
}

// ShowsBody reports whether any gated content is attached.
func (d AccessDecision) ShowsBody() bool {
	return d.HTML != "" || len(d.Sections) > 0
}
