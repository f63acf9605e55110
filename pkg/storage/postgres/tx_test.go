package postgres_test

import (
	"context"
	"errors"
	"testing"

	"advisor/internal/leads"
	"advisor/pkg/domain"
	"advisor/pkg/storage"
	"advisor/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func txCandidate(id string) domain.Candidate {
	return domain.Candidate{
		ID:          id,
		Countries:   domain.NewSet("US"),
		Exchanges:   domain.NewSet("Coinbase"),
		Blockchains: domain.NewSet("ethereum"),
		TrustRating: 4.1,
	}
}

func candidateIDs(t *testing.T, s storage.CandidateStorage) []string {
	t.Helper()
	candidates, err := s.Candidates(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	return ids
}

func TestPgSQL_Begin_NestedTxIsRejected(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback() })

	_, err = tx.(*postgres.PgSQL).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitRollback_OutsideTx(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PublishesCandidates(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	ctx := context.Background()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.UpsertCandidates(ctx, txCandidate("Koinly"))
	require.NoError(t, err)

	require.Equal(t, []string{"Koinly"}, candidateIDs(t, tx))
	require.Empty(t, candidateIDs(t, pg), "uncommitted rows must not be visible outside the tx")

	require.NoError(t, tx.Commit())
	require.Equal(t, []string{"Koinly"}, candidateIDs(t, pg))
}

func TestPgSQL_Rollback_DiscardsCandidates(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	ctx := context.Background()

	_, err := pg.UpsertCandidates(ctx, txCandidate("Koinly"))
	require.NoError(t, err)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.DeleteCandidatesExcept(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, candidateIDs(t, tx))

	require.NoError(t, tx.Rollback())
	require.Equal(t, []string{"Koinly"}, candidateIDs(t, pg))
}

func TestPgSQL_WithTx_LeadAndJobCommitTogether(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	ctx := context.Background()

	var stored *domain.Lead
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		stored, err = s.StoreLead(ctx, testLead())
		if err != nil {
			return err
		}
		_, err = s.AddJob(ctx, leads.JobArgs{LeadID: uuid.UUID(stored.ID)}, nil)

		return err
	})
	require.NoError(t, err)

	got, err := pg.LeadByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	inserted, err := pg.AddJob(ctx, leads.JobArgs{LeadID: uuid.UUID(stored.ID)}, nil)
	require.NoError(t, err)
	require.False(t, inserted, "job committed with the lead should already be queued")
}

func TestPgSQL_WithTx_ErrorRollsBackLead(t *testing.T) {
	t.Parallel()

	pg := newTestStorage(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var stored *domain.Lead
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var err error
		stored, err = s.StoreLead(ctx, testLead())
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NotNil(t, stored)

	got, err := pg.LeadByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
