package catalog_test

import (
	"testing"

	"advisor/internal/catalog"
	"advisor/pkg/domain"

	"github.com/stretchr/testify/require"
)

func optionsCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	c, err := domain.NewCatalog(
		domain.Candidate{
			ID:          "Koinly",
			Countries:   domain.NewSet("US", "UK"),
			Exchanges:   domain.NewSet("Binance", "Coinbase"),
			Blockchains: domain.NewSet("ethereum", "bitcoin"),
		},
		domain.Candidate{
			ID:          "Awaken.tax",
			Countries:   domain.NewSet("US"),
			Exchanges:   domain.NewSet("Phantom", "Coinbase"),
			Blockchains: domain.NewSet("solana"),
		},
		domain.Candidate{
			ID:          "Accointing",
			Countries:   domain.NewSet("DE"),
			Exchanges:   domain.NewSet("Bitpanda"),
			Blockchains: domain.NewSet("cardano", "bitcoin"),
		},
	)
	require.NoError(t, err)

	return c
}

func TestCountries(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"DE", "UK", "US"}, catalog.Countries(optionsCatalog(t)))
	require.Empty(t, catalog.Countries(nil))
	require.NotNil(t, catalog.Countries(nil))
}

func TestExchanges(t *testing.T) {
	t.Parallel()

	c := optionsCatalog(t)
	require.Equal(t, []string{"Binance", "Bitpanda", "Coinbase", "Phantom"}, catalog.Exchanges(c, ""))
	require.Equal(t, []string{"Binance", "Coinbase", "Phantom"}, catalog.Exchanges(c, "US"))
	require.Equal(t, []string{"Bitpanda"}, catalog.Exchanges(c, "DE"))
	require.Empty(t, catalog.Exchanges(c, "FR"))
}

func TestBlockchains(t *testing.T) {
	t.Parallel()

	c := optionsCatalog(t)
	require.Equal(t, []string{"bitcoin", "cardano", "ethereum", "solana"}, catalog.Blockchains(c, "", ""))
	require.Equal(t, []string{"bitcoin", "ethereum", "solana"}, catalog.Blockchains(c, "US", ""))
	require.Equal(t, []string{"bitcoin", "ethereum", "solana"}, catalog.Blockchains(c, "US", "Coinbase"))
	require.Equal(t, []string{"solana"}, catalog.Blockchains(c, "US", "Phantom"))
	require.Empty(t, catalog.Blockchains(c, "DE", "Coinbase"))
}
