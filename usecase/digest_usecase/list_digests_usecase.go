package digest_usecase

import (
	"context"
	"slices"

	"allaboutxrp/domain"
	"allaboutxrp/port/digest_port"
)

// ListDigestsUsecase returns the digest archive.
type ListDigestsUsecase struct {
	index digest_port.DigestIndexPort
	limit int
}

// NewListDigestsUsecase caps the listing at limit entries; zero means no cap.
func NewListDigestsUsecase(index digest_port.DigestIndexPort, limit int) *ListDigestsUsecase {
	return &ListDigestsUsecase{index: index, limit: limit}
}

// Execute returns the summaries newest week first.
func (u *ListDigestsUsecase) Execute(ctx context.Context) ([]domain.DigestSummary, error) {
	summaries, err := u.index.FetchDigestIndex(ctx)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(summaries)
	if out == nil {
		out = []domain.DigestSummary{}
	}
	slices.SortStableFunc(out, func(a, b domain.DigestSummary) int {
		return b.WeekStart.Compare(a.WeekStart)
	})
	if u.limit > 0 && len(out) > u.limit {
		out = out[:u.limit]
	}
	return out, nil
}
