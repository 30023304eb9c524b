package catalog_gateway

import (
	"context"
	"fmt"
	"os"
	"sync"

	"allaboutxrp/domain"
	"allaboutxrp/port/catalog_port"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/robots"
	"allaboutxrp/utils/validator"

	"gopkg.in/yaml.v3"
)

var _ catalog_port.CatalogPort = (*CatalogGateway)(nil)

// catalogFile is the on-disk layout of the content catalog.
type catalogFile struct {
	SiteURL string               `yaml:"site_url"`
	Pages   []domain.Page        `yaml:"pages"`
	FAQs    []domain.FAQItem     `yaml:"faqs"`
	Robots  *domain.RobotsPolicy `yaml:"robots,omitempty"`
}

// CatalogGateway serves editorial metadata from a YAML document held in memory.
type CatalogGateway struct {
	mu      sync.RWMutex
	path    string
	siteURL string
	pages   []domain.Page
	bySlug  map[string]int
	faqs    []domain.FAQItem
	robots  domain.RobotsPolicy
}

// NewCatalogGateway loads the catalog at path. siteURL is used when the
// file does not name one.
func NewCatalogGateway(path, siteURL string) (*CatalogGateway, error) {
	g := &CatalogGateway{path: path, siteURL: siteURL}
	if err := g.Reload(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewCatalogGatewayFromBytes parses an in-memory catalog.
func NewCatalogGatewayFromBytes(data []byte, siteURL string) (*CatalogGateway, error) {
	g := &CatalogGateway{siteURL: siteURL}
	if err := g.load(data); err != nil {
		return nil, err
	}
	return g, nil
}

// Reload re-reads the catalog file. On failure the previous contents stay.
func (g *CatalogGateway) Reload() error {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", g.path, err)
	}
	if err := g.load(data); err != nil {
		return fmt.Errorf("parse catalog %s: %w", g.path, err)
	}
	logger.FromContext(context.Background()).Info("catalog loaded", "path", g.path, "pages", len(g.pages), "faqs", len(g.faqs))
	return nil
}

func (g *CatalogGateway) load(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	siteURL := g.siteURL
	if file.SiteURL != "" {
		siteURL = file.SiteURL
	}

	bySlug := make(map[string]int, len(file.Pages))
	for i, p := range file.Pages {
		if !domain.IsValidSlug(p.Slug) {
			return fmt.Errorf("page %d: %w: %q", i, domain.ErrInvalidSlug, p.Slug)
		}
		if _, dup := bySlug[p.Slug]; dup {
			return fmt.Errorf("page %q defined twice", p.Slug)
		}
		bySlug[p.Slug] = i
	}

	v := validator.New()
	for _, p := range file.Pages {
		if err := v.Validate(p); err != nil {
			return fmt.Errorf("page %q: %w", p.Slug, err)
		}
	}
	for i, f := range file.FAQs {
		if err := v.Validate(f); err != nil {
			return fmt.Errorf("faq %d: %w", i, err)
		}
	}

	policy := robots.DefaultPolicy(siteURL)
	if file.Robots != nil {
		policy = *file.Robots
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.siteURL = siteURL
	g.pages = file.Pages
	g.bySlug = bySlug
	g.faqs = file.FAQs
	g.robots = policy
	return nil
}

func (g *CatalogGateway) ListPages(_ context.Context) ([]domain.Page, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]domain.Page(nil), g.pages...), nil
}

func (g *CatalogGateway) FindPage(_ context.Context, slug string) (*domain.Page, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.bySlug[slug]
	if !ok {
		return nil, domain.ErrPageNotFound
	}
	page := g.pages[i]
	return &page, nil
}

func (g *CatalogGateway) ListFAQs(_ context.Context) ([]domain.FAQItem, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]domain.FAQItem(nil), g.faqs...), nil
}

func (g *CatalogGateway) RobotsPolicy(_ context.Context) (domain.RobotsPolicy, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.robots, nil
}

// SiteURL is the canonical origin of the catalog pages.
func (g *CatalogGateway) SiteURL() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.siteURL
}
