package catalog_usecase

import (
	"context"

	"allaboutxrp/domain"
	"allaboutxrp/port/catalog_port"
)

const DefaultRelatedFAQs = 4

// FAQUsecase serves the FAQ catalog by slug.
type FAQUsecase struct {
	catalog catalog_port.CatalogPort
}

func NewFAQUsecase(catalog catalog_port.CatalogPort) *FAQUsecase {
	return &FAQUsecase{catalog: catalog}
}

// List returns every FAQ with its slug filled in.
func (u *FAQUsecase) List(ctx context.Context) ([]domain.FAQItem, error) {
	items, err := u.catalog.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FAQItem, len(items))
	for i, item := range items {
		if item.Slug == "" {
			item.Slug = Slugify(item.Question)
		}
		out[i] = item
	}
	return out, nil
}

// Find returns the FAQ for slug and up to count other entries in catalog order.
func (u *FAQUsecase) Find(ctx context.Context, slug string, count int) (domain.FAQItem, []domain.FAQItem, error) {
	items, err := u.List(ctx)
	if err != nil {
		return domain.FAQItem{}, nil, err
	}

	var (
		found   *domain.FAQItem
		related = make([]domain.FAQItem, 0, count)
	)
	for i := range items {
		if items[i].Slug == slug {
			if found == nil {
				found = &items[i]
			}
			continue
		}
		if len(related) < count {
			related = append(related, items[i])
		}
	}
	if found == nil {
		return domain.FAQItem{}, nil, domain.ErrFAQNotFound
	}
	return *found, related, nil
}
