package catalog_port

//go:generate go run go.uber.org/mock/mockgen -source=catalog_port.go -destination=../../mocks/mock_catalog_port.go -package=mocks

import (
	"context"

	"allaboutxrp/domain"
)

// CatalogPort serves the editorial page metadata.
type CatalogPort interface {
	ListPages(ctx context.Context) ([]domain.Page, error)
	FindPage(ctx context.Context, slug string) (*domain.Page, error)
	ListFAQs(ctx context.Context) ([]domain.FAQItem, error)
	RobotsPolicy(ctx context.Context) (domain.RobotsPolicy, error)
}
