// Package cache defines the recommendation cache used to skip scoring for
// repeated questionnaire submissions.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"strconv"
	"strings"

	"advisor/pkg/domain"

	"github.com/cespare/xxhash/v2"
)

// KeyPrefix namespaces all recommendation cache keys.
const KeyPrefix = "advisor:rec:"

// RecommendationCache stores recommendation lists per catalog version and
// normalized profile.
type RecommendationCache interface {
	// Recommendations returns the cached list and true on a hit.
	Recommendations(ctx context.Context, catalogVersion string, profile domain.Profile) ([]domain.Recommendation, bool, error)
	// StoreRecommendations caches recs for the given catalog version and profile.
	StoreRecommendations(ctx context.Context,
		catalogVersion string,
		profile domain.Profile,
		recs []domain.Recommendation) error
}

// Key returns the cache key of a profile scored against a catalog version. The
// profile is normalized first, so equivalent submissions share a key. Set order
// is significant because matched lists follow it.
func Key(catalogVersion string, profile domain.Profile) string {
	p := profile.Normalized()

	d := xxhash.New()
	write := func(s string) {
		_, _ = d.WriteString(s)
		_, _ = d.WriteString("\x00")
	}
	write(p.PrimaryBlockchain)
	write(strings.Join(p.Blockchains, "\x1f"))
	write(strings.Join(p.Exchanges, "\x1f"))
	write(strconv.FormatBool(p.NFT))
	write(strconv.FormatBool(p.DeFi))
	write(p.Country)

	return KeyPrefix + catalogVersion + ":" + strconv.FormatUint(d.Sum64(), 16)
}
