package recommend

import (
	"advisor/pkg/domain"
)

// Policy is a post-ranking step. It receives the full ranking (best first,
// never empty) and returns the list the result is cut from. Policies encode
// business rules and must not change the scoring formula.
type Policy interface {
	// Name identifies the policy in logs and metrics.
	Name() string
	// Apply returns the adjusted ranking for p.
	Apply(p domain.Profile, ranked []domain.ScoredCandidate) []domain.ScoredCandidate
}

// PromotionScore is the score assigned to promoted candidates.
const PromotionScore = 100.0

// PromotionTrustRating is the trust rating reported for promoted candidates.
const PromotionTrustRating = 4.5

// Promotion pins fixed candidates to the top slots whenever the primary
// blockchain equals Blockchain, regardless of their computed scores.
//
// This is a hard-coded commercial arrangement, not a scoring outcome.
type Promotion struct {
	Blockchain string
	Pinned     []string
}

// SolanaPromotion returns the promotion configured for solana users.
func SolanaPromotion() Promotion {
	return Promotion{
		Blockchain: "solana",
		Pinned:     []string{"Netrunner", "Awaken.tax"},
	}
}

// Name implements Policy.
func (pr Promotion) Name() string { return "promotion:" + pr.Blockchain }

// Apply puts the pinned candidates in the first slots. The remaining slots keep
// the computed ranking from position len(Pinned) on, skipping pinned IDs so
// no candidate appears twice.
func (pr Promotion) Apply(p domain.Profile, ranked []domain.ScoredCandidate) []domain.ScoredCandidate {
	if p.PrimaryBlockchain != pr.Blockchain || len(pr.Pinned) == 0 {
		return ranked
	}

	pinned := make(map[string]struct{}, len(pr.Pinned))
	out := make([]domain.ScoredCandidate, 0, len(ranked)+len(pr.Pinned))
	for _, id := range pr.Pinned {
		pinned[id] = struct{}{}
		out = append(out, domain.ScoredCandidate{
			ID:          id,
			Score:       PromotionScore,
			TrustRating: PromotionTrustRating,
		})
	}

	for i := len(pr.Pinned); i < len(ranked); i++ {
		if _, ok := pinned[ranked[i].ID]; ok {
			continue
		}
		out = append(out, ranked[i])
	}

	return out
}
