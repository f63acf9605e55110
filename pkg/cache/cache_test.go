package cache_test

import (
	"strings"
	"testing"

	"advisor/pkg/cache"
	"advisor/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Parallel()

	base := domain.Profile{
		PrimaryBlockchain: "ethereum",
		Blockchains:       domain.NewSet("ethereum", "polygon"),
		Exchanges:         domain.NewSet("Binance"),
		Country:           "US",
	}
	key := cache.Key("v1", base)
	require.True(t, strings.HasPrefix(key, cache.KeyPrefix+"v1:"))

	t.Run("equivalent profiles share a key", func(t *testing.T) {
		t.Parallel()

		p := base
		p.PrimaryBlockchain = " ethereum "
		p.Blockchains = domain.Set{"ethereum", "polygon", "ethereum"}
		require.Equal(t, key, cache.Key("v1", p))
	})

	t.Run("catalog version changes the key", func(t *testing.T) {
		t.Parallel()

		require.NotEqual(t, key, cache.Key("v2", base))
	})

	t.Run("answers change the key", func(t *testing.T) {
		t.Parallel()

		variants := []func(p *domain.Profile){
			func(p *domain.Profile) { p.NFT = true },
			func(p *domain.Profile) { p.DeFi = true },
			func(p *domain.Profile) { p.Country = "UK" },
			func(p *domain.Profile) { p.Exchanges = domain.Set{"Kraken"} },
			func(p *domain.Profile) { p.Blockchains = domain.Set{"polygon", "ethereum"} },
		}
		for _, mutate := range variants {
			p := base
			mutate(&p)
			require.NotEqual(t, key, cache.Key("v1", p))
		}
	})
}
