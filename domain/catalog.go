package domain

import "time"

// Breadcrumb is one segment of a page trail. The last one usually has no URL.
type Breadcrumb struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty" validate:"omitempty,url"`
}

// QAPair is a question with its answer.
type QAPair struct {
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
}

// HowToStep is one step of a how-to guide.
type HowToStep struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Text string `yaml:"text" json:"text" validate:"required"`
}

// Page is an editorial page with the metadata its structured data needs.
type Page struct {
	Slug          string       `yaml:"slug" json:"slug" validate:"required,slug"`
	Path          string       `yaml:"path" json:"path" validate:"required,site_path"`
	Title         string       `yaml:"title" json:"title" validate:"required"`
	Description   string       `yaml:"description" json:"description" validate:"required"`
	DatePublished time.Time    `yaml:"date_published" json:"date_published" validate:"required"`
	DateModified  time.Time    `yaml:"date_modified" json:"date_modified"`
	Image         string       `yaml:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	Breadcrumbs   []Breadcrumb `yaml:"breadcrumbs" json:"breadcrumbs" validate:"required,min=1,dive"`
	FAQ           []QAPair     `yaml:"faq,omitempty" json:"faq,omitempty" validate:"dive"`
	HowTo         []HowToStep  `yaml:"howto,omitempty" json:"howto,omitempty" validate:"dive"`
	Speakable     []string     `yaml:"speakable,omitempty" json:"speakable,omitempty"`
}

// FAQItem is a catalog FAQ entry. Slug is derived from the question when empty.
type FAQItem struct {
	Slug     string `yaml:"slug,omitempty" json:"slug" validate:"omitempty,slug"`
	Question string `yaml:"question" json:"question" validate:"required"`
	Answer   string `yaml:"answer" json:"answer" validate:"required"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// RobotsRule is one user-agent group of robots.txt.
type RobotsRule struct {
	UserAgents []string `yaml:"user_agents"`
	Allow      []string `yaml:"allow,omitempty"`
	Disallow   []string `yaml:"disallow,omitempty"`
}

// RobotsPolicy is the whole robots.txt document.
type RobotsPolicy struct {
	Rules   []RobotsRule `yaml:"rules"`
	Sitemap string       `yaml:"sitemap,omitempty"`
}
