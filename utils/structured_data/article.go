package structured_data

// ArticleInput holds the page metadata of an article.
// Dates are passed through verbatim, usually ISO-8601.
type ArticleInput struct {
	Headline      string
	Description   string
	URL           string
	DatePublished string
	DateModified  string
	Image         string
}

type ArticleRecord struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	URL              string       `json:"url"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	Author           Person       `json:"author"`
	Publisher        Organization `json:"publisher"`
	MainEntityOfPage WebPageRef   `json:"mainEntityOfPage"`
	Image            string       `json:"image,omitempty"`
}

func (ArticleRecord) SchemaType() string { return "Article" }

func BuildArticle(in ArticleInput) ArticleRecord {
	return ArticleRecord{
		Context:          SchemaContext,
		Type:             "Article",
		Headline:         in.Headline,
		Description:      in.Description,
		URL:              in.URL,
		DatePublished:    in.DatePublished,
		DateModified:     in.DateModified,
		Author:           Author(),
		Publisher:        Publisher(),
		MainEntityOfPage: WebPageRef{Type: "WebPage", ID: in.URL},
		Image:            in.Image,
	}
}
