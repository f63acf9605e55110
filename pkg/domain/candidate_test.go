package domain_test

import (
	"math"
	"testing"

	"advisor/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c, err := domain.NewCatalog(
		domain.Candidate{ID: "Zulu", Blockchains: domain.Set{"ethereum", "ethereum"}, TrustRating: 5},
		domain.Candidate{ID: "Alpha", Countries: domain.Set{" US "}, TrustRating: 0},
	)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	entries := c.Entries()
	require.Equal(t, "Alpha", entries[0].ID)
	require.Equal(t, "Zulu", entries[1].ID)
	require.Equal(t, domain.Set{"ethereum"}, entries[1].Blockchains)
	require.True(t, entries[0].SupportsCountry("US"))
	require.True(t, entries[1].SupportsBlockchain("ethereum"))
	require.False(t, entries[1].SupportsExchange("Binance"))

	e, ok := c.Lookup("Zulu")
	require.True(t, ok)
	require.Same(t, entries[1], e)
	_, ok = c.Lookup("missing")
	require.False(t, ok)

	require.Len(t, c.Candidates(), 2)
}

func TestNewCatalog_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		candidates []domain.Candidate
	}{
		{name: "empty id", candidates: []domain.Candidate{{ID: ""}}},
		{name: "duplicate id", candidates: []domain.Candidate{{ID: "A"}, {ID: "A"}}},
		{name: "rating too high", candidates: []domain.Candidate{{ID: "A", TrustRating: 5.1}}},
		{name: "negative rating", candidates: []domain.Candidate{{ID: "A", TrustRating: -1}}},
		{name: "NaN rating", candidates: []domain.Candidate{{ID: "A", TrustRating: math.NaN()}}},
		{name: "infinite rating", candidates: []domain.Candidate{{ID: "A", TrustRating: math.Inf(1)}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewCatalog(tc.candidates...)
			require.Error(t, err)
		})
	}
}

func TestCatalog_Version(t *testing.T) {
	t.Parallel()

	a := domain.Candidate{ID: "A", Blockchains: domain.NewSet("ethereum"), TrustRating: 4}
	b := domain.Candidate{ID: "B", Exchanges: domain.NewSet("Kraken"), TrustRating: 3}

	c1, err := domain.NewCatalog(a, b)
	require.NoError(t, err)
	c2, err := domain.NewCatalog(b, a)
	require.NoError(t, err)
	require.NotEmpty(t, c1.Version())
	require.Equal(t, c1.Version(), c2.Version())

	b.TrustRating = 3.5
	c3, err := domain.NewCatalog(a, b)
	require.NoError(t, err)
	require.NotEqual(t, c1.Version(), c3.Version())
}

func TestCatalog_Nil(t *testing.T) {
	t.Parallel()

	var c *domain.Catalog
	require.Zero(t, c.Len())
	require.Empty(t, c.Version())
	require.Empty(t, c.Entries())
	_, ok := c.Lookup("A")
	require.False(t, ok)
}

func TestProfile_Normalized(t *testing.T) {
	t.Parallel()

	p := domain.Profile{
		PrimaryBlockchain: " solana ",
		Blockchains:       domain.Set{"solana", "solana", " "},
		Exchanges:         domain.Set{"Binance"},
		Country:           " Canada",
	}.Normalized()

	require.Equal(t, "solana", p.PrimaryBlockchain)
	require.Equal(t, domain.Set{"solana"}, p.Blockchains)
	require.Equal(t, "Canada", p.Country)
}
