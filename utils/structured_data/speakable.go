package structured_data

type SpeakableInput struct {
	URL string
	// Selectors defaults to the direct-answer block.
	Selectors []string
}

type SpeakableSpecification struct {
	Type        string   `json:"@type"`
	CSSSelector []string `json:"cssSelector"`
}

type SpeakableRecord struct {
	Context   string                 `json:"@context"`
	Type      string                 `json:"@type"`
	Speakable SpeakableSpecification `json:"speakable"`
	URL       string                 `json:"url"`
}

func (SpeakableRecord) SchemaType() string { return "WebPage" }

func BuildSpeakable(in SpeakableInput) SpeakableRecord {
	selectors := []string{DefaultSpeakableSelector}
	if len(in.Selectors) > 0 {
		selectors = append([]string(nil), in.Selectors...)
	}
	return SpeakableRecord{
		Context: SchemaContext,
		Type:    "WebPage",
		Speakable: SpeakableSpecification{
			Type:        "SpeakableSpecification",
			CSSSelector: selectors,
		},
		URL: in.URL,
	}
}
