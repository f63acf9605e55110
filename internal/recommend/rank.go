package recommend

import (
	"cmp"
	"slices"

	"advisor/pkg/domain"
)

// Eligible returns the entries supporting the primary blockchain, in catalog order.
func Eligible(catalog *domain.Catalog, primary string) []*domain.Entry {
	var out []*domain.Entry
	for _, e := range catalog.Entries() {
		if e.SupportsBlockchain(primary) {
			out = append(out, e)
		}
	}

	return out
}

// Rank scores entries for p and sorts them by score, then trust rating, both
// descending, then by ID ascending.
func Rank(p domain.Profile, entries []*domain.Entry) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(entries))
	for _, e := range entries {
		scored = append(scored, domain.ScoredCandidate{
			ID:          e.ID,
			Score:       Score(p, e).Total(),
			TrustRating: e.TrustRating,
		})
	}
	slices.SortStableFunc(scored, Compare)

	return scored
}

// Compare orders scored candidates best first.
func Compare(a, b domain.ScoredCandidate) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.TrustRating, a.TrustRating); c != 0 {
		return c
	}

	return cmp.Compare(a.ID, b.ID)
}
