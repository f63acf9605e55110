package postgres_test

import (
	"context"
	"testing"

	"advisor/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertCandidates(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	koinly := domain.Candidate{
		ID:           "Koinly",
		Countries:    domain.NewSet("US", "UK"),
		Exchanges:    domain.NewSet("Binance", "Coinbase"),
		Blockchains:  domain.NewSet("ethereum", "bitcoin"),
		NFTProtocols: domain.NewSet("OpenSea"),
		TrustRating:  4.6,
	}
	cointracker := domain.Candidate{
		ID:          "CoinTracker",
		Countries:   domain.NewSet("US"),
		Exchanges:   domain.NewSet("Kraken"),
		Blockchains: domain.NewSet("ethereum"),
		TrustRating: 4.2,
	}

	n, err := pgSQL.UpsertCandidates(ctx, koinly, cointracker)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	got, err := pgSQL.Candidates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ordered by id
	require.Equal(t, "CoinTracker", got[0].ID)
	require.Equal(t, "Koinly", got[1].ID)
	require.Equal(t, domain.Set{"US", "UK"}, got[1].Countries)
	require.Equal(t, domain.Set{"OpenSea"}, got[1].NFTProtocols)
	require.Empty(t, got[1].DeFiProtocols)
	require.InDelta(t, 4.6, got[1].TrustRating, 1e-9)

	// upsert replaces existing rows
	koinly.TrustRating = 3.9
	koinly.Exchanges = domain.NewSet("Binance")
	n, err = pgSQL.UpsertCandidates(ctx, koinly)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err = pgSQL.Candidates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.InDelta(t, 3.9, got[1].TrustRating, 1e-9)
	require.Equal(t, domain.Set{"Binance"}, got[1].Exchanges)

	n, err = pgSQL.UpsertCandidates(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestPgSQL_DeleteCandidatesExcept(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	_, err := pgSQL.UpsertCandidates(ctx,
		domain.Candidate{ID: "A", Blockchains: domain.NewSet("ethereum")},
		domain.Candidate{ID: "B", Blockchains: domain.NewSet("ethereum")},
		domain.Candidate{ID: "C", Blockchains: domain.NewSet("ethereum")},
	)
	require.NoError(t, err)

	n, err := pgSQL.DeleteCandidatesExcept(ctx, []string{"A", "C"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := pgSQL.Candidates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "A", got[0].ID)
	require.Equal(t, "C", got[1].ID)

	n, err = pgSQL.DeleteCandidatesExcept(ctx, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	got, err = pgSQL.Candidates(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPgSQL_CandidatesWithinTx(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	tx, err := pgSQL.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.UpsertCandidates(ctx, domain.Candidate{ID: "Tx", Blockchains: domain.NewSet("solana")})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err := pgSQL.Candidates(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
