// Package structured_data assembles schema.org JSON-LD records for page output.
// Every builder is pure: the same input always yields a deep-equal record.
package structured_data

import (
	"encoding/json"
)

const (
	SchemaContext = "https://schema.org"
	SiteURL       = "https://allaboutxrp.com"

	DefaultSpeakableSelector = ".direct-answer"
)

// ImageObject is a schema.org ImageObject.
type ImageObject struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Organization is the site publisher.
type Organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Logo *ImageObject `json:"logo,omitempty"`
}

// Person is the editorial author.
type Person struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	JobTitle string `json:"jobTitle,omitempty"`
}

// WebPageRef points mainEntityOfPage at the canonical URL.
type WebPageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// Publisher returns the organization credited on every record.
func Publisher() Organization {
	return Organization{
		Type: "Organization",
		Name: "AllAboutXRP",
		URL:  SiteURL,
		Logo: &ImageObject{Type: "ImageObject", URL: SiteURL + "/logo.png", Width: 200, Height: 200},
	}
}

// Author returns the editorial byline.
func Author() Person {
	return Person{
		Type:     "Person",
		Name:     "AllAboutXRP Editorial Team",
		URL:      SiteURL,
		JobTitle: "XRP & Blockchain Research",
	}
}

// Record is any JSON-LD object produced by this package.
type Record interface {
	SchemaType() string
}

// Render serialises records as a JSON array for a single ld+json script block.
func Render(records ...Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.Marshal(records)
}

// RenderEach serialises each record on its own, one script block per record.
func RenderEach(records ...Record) ([][]byte, error) {
	out := make([][]byte, 0, len(records))
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
