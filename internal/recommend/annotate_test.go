package recommend_test

import (
	"testing"

	"advisor/internal/recommend"
	"advisor/pkg/domain"
	"advisor/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	c := testCatalog(t)
	p := domain.Profile{
		PrimaryBlockchain: "ethereum",
		Blockchains:       domain.Set{"polygon", "solana", "bitcoin"},
		Exchanges:         domain.Set{"Binance", "Kraken", "Coinbase"},
		Country:           "US",
	}

	recs, err := recommend.Annotate(c, p, []domain.ScoredCandidate{
		{ID: "Alpha", Score: 1},
		{ID: "Bravo", Score: 1},
	})
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// input order, not catalog order
	require.Equal(t, []string{"polygon", "bitcoin"}, recs[0].MatchedBlockchains)
	require.Equal(t, []string{"Binance", "Coinbase"}, recs[0].MatchedExchanges)
	require.Empty(t, recs[1].MatchedBlockchains)
	require.Equal(t, []string{"Kraken"}, recs[1].MatchedExchanges)
}

func TestAnnotate_MissingCandidate(t *testing.T) {
	c := testCatalog(t)
	p := ethereumProfile()

	recs, err := recommend.Annotate(c, p, []domain.ScoredCandidate{
		{ID: "Ghost", Score: 100, TrustRating: 4.5},
		{ID: "Alpha", Score: 17, TrustRating: 4.6},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrDataIntegrity)
	var integrity *recommend.DataIntegrityError
	require.ErrorAs(t, err, &integrity)
	require.Equal(t, "Ghost", integrity.CandidateID)

	require.Len(t, recs, 2)
	require.Equal(t, "Ghost", recs[0].ID)
	require.NotNil(t, recs[0].MatchedBlockchains)
	require.Empty(t, recs[0].MatchedBlockchains)
	require.Empty(t, recs[0].MatchedExchanges)
	require.Equal(t, []string{"bitcoin", "polygon"}, recs[1].MatchedBlockchains)
}
