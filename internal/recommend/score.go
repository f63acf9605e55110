package recommend

import "advisor/pkg/domain"

// Scoring weights.
const (
	BlockchainWeight = 2.0
	ExchangeWeight   = 3.0
	NFTBonus         = 1.5
	DeFiBonus        = 1.5
	CountryBonus     = 5.0

	HighTrustRating = 4.5
	HighTrustBonus  = 5.0
	GoodTrustRating = 4.0
	GoodTrustBonus  = 2.0
)

// Breakdown holds the independent contributions that make up a score.
type Breakdown struct {
	Blockchains float64
	Exchanges   float64
	NFT         float64
	DeFi        float64
	Country     float64
	Trust       float64
}

// Total sums the contributions.
func (b Breakdown) Total() float64 {
	return b.Blockchains + b.Exchanges + b.NFT + b.DeFi + b.Country + b.Trust
}

// Score computes the contributions of entry for a normalized profile. The
// profile must have a non-empty exchange set.
func Score(p domain.Profile, e *domain.Entry) Breakdown {
	var b Breakdown

	var chains int
	for _, bc := range p.Blockchains {
		if e.SupportsBlockchain(bc) {
			chains++
		}
	}
	b.Blockchains = BlockchainWeight * float64(chains)

	var exchanges int
	for _, ex := range p.Exchanges {
		if e.SupportsExchange(ex) {
			exchanges++
		}
	}
	b.Exchanges = ExchangeWeight * (float64(exchanges) / float64(len(p.Exchanges)))

	if p.NFT && e.NFTProtocolCount() > 0 {
		b.NFT = NFTBonus
	}
	if p.DeFi && e.DeFiProtocolCount() > 0 {
		b.DeFi = DeFiBonus
	}
	if e.SupportsCountry(p.Country) {
		b.Country = CountryBonus
	}
	b.Trust = TrustBonus(e.TrustRating)

	return b
}

// TrustBonus maps a trust rating to its coarse tier bonus.
func TrustBonus(rating float64) float64 {
	switch {
	case rating >= HighTrustRating:
		return HighTrustBonus
	case rating >= GoodTrustRating:
		return GoodTrustBonus
	default:
		return 0
	}
}
