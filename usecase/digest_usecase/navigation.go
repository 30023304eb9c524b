package digest_usecase

import (
	"slices"

	"allaboutxrp/domain"
)

// NormalizeIndex projects summaries onto index entries, newest week first.
// Ties keep their retrieval order.
func NormalizeIndex(summaries []domain.DigestSummary) []domain.DigestIndexEntry {
	entries := make([]domain.DigestIndexEntry, 0, len(summaries))
	for i := range summaries {
		entries = append(entries, summaries[i].IndexEntry())
	}
	slices.SortStableFunc(entries, func(a, b domain.DigestIndexEntry) int {
		return b.WeekStart.Compare(a.WeekStart)
	})
	return entries
}

// ComputeAdjacent finds the neighbours of slug in a newest-first index.
// Previous is the older digest and Next the newer one.
func ComputeAdjacent(index []domain.DigestIndexEntry, slug string) domain.Adjacent {
	i := slices.IndexFunc(index, func(e domain.DigestIndexEntry) bool {
		return e.Slug == slug
	})
	if i < 0 {
		return domain.Adjacent{}
	}

	var adj domain.Adjacent
	if i+1 < len(index) {
		prev := index[i+1]
		adj.Previous = &prev
	}
	if i > 0 {
		next := index[i-1]
		adj.Next = &next
	}
	return adj
}
