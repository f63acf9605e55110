package recommend_test

import (
	"testing"

	"advisor/pkg/domain"

	"github.com/stretchr/testify/require"
)

func testCandidates() []domain.Candidate {
	return []domain.Candidate{
		{
			ID:            "Alpha",
			Countries:     domain.Set{"US", "UK"},
			Exchanges:     domain.Set{"Coinbase", "Binance"},
			Blockchains:   domain.Set{"ethereum", "bitcoin", "polygon"},
			NFTProtocols:  domain.Set{"OpenSea"},
			DeFiProtocols: domain.Set{"Uniswap"},
			TrustRating:   4.6,
		},
		{
			ID:          "Bravo",
			Countries:   domain.Set{"DE"},
			Exchanges:   domain.Set{"Kraken"},
			Blockchains: domain.Set{"ethereum"},
			TrustRating: 3.9,
		},
		{
			ID:           "Charlie",
			Countries:    domain.Set{"US"},
			Exchanges:    domain.Set{"Coinbase"},
			Blockchains:  domain.Set{"ethereum", "solana"},
			NFTProtocols: domain.Set{"Magic Eden"},
			TrustRating:  4.2,
		},
		{
			ID:          "Netrunner",
			Countries:   domain.Set{"US"},
			Exchanges:   domain.Set{"Binance"},
			Blockchains: domain.Set{"solana"},
			TrustRating: 4.5,
		},
		{
			ID:          "Delta",
			Countries:   domain.Set{"US"},
			Exchanges:   domain.Set{"Coinbase"},
			Blockchains: domain.Set{"bitcoin"},
			TrustRating: 5,
		},
	}
}

func testCatalog(t *testing.T, candidates ...domain.Candidate) *domain.Catalog {
	t.Helper()

	if len(candidates) == 0 {
		candidates = testCandidates()
	}
	c, err := domain.NewCatalog(candidates...)
	require.NoError(t, err)

	return c
}

func ethereumProfile() domain.Profile {
	return domain.Profile{
		PrimaryBlockchain: "ethereum",
		Blockchains:       domain.Set{"bitcoin", "polygon"},
		Exchanges:         domain.Set{"Coinbase", "Kraken"},
		NFT:               true,
		DeFi:              false,
		Country:           "US",
	}
}

func ids(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}

	return out
}
