package postgres_test

import (
	"context"
	"testing"

	"advisor/pkg/domain"
	"advisor/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLead() domain.Lead {
	return domain.Lead{
		Profile: domain.Profile{
			PrimaryBlockchain: "ethereum",
			Blockchains:       domain.NewSet("ethereum", "polygon"),
			Exchanges:         domain.NewSet("Binance"),
			NFT:               true,
			Country:           "US",
		},
		Status:         domain.LeadStatusPending,
		Recommended:    []string{"Koinly", "CoinTracker"},
		CatalogVersion: "abc",
	}
}

func TestPgSQL_StoreLead(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	stored, err := pgSQL.StoreLead(ctx, testLead())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uuid.UUID(stored.ID))
	require.Equal(t, domain.LeadStatusPending, stored.Status)
	require.Equal(t, []string{"Koinly", "CoinTracker"}, stored.Recommended)
	require.Equal(t, "ethereum", stored.Profile.PrimaryBlockchain)
	require.Equal(t, domain.Set{"ethereum", "polygon"}, stored.Profile.Blockchains)
	require.Zero(t, stored.Attempts)
	require.False(t, stored.CreatedAt.IsZero())

	got, err := pgSQL.LeadByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Equal(t, "abc", got.CatalogVersion)
}

func TestPgSQL_LeadByID_NotFound(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)

	got, err := pgSQL.LeadByID(context.Background(), domain.LeadID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdateLead(t *testing.T) {
	t.Parallel()

	pgSQL := newTestStorage(t)
	ctx := context.Background()

	stored, err := pgSQL.StoreLead(ctx, testLead())
	require.NoError(t, err)

	msg := "crm unavailable"
	updated, err := pgSQL.UpdateLead(ctx, stored.ID, storage.LeadUpdates{
		Status:    domain.LeadStatusPending,
		LastError: &msg,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.EqualValues(t, 1, updated.Attempts)
	require.Equal(t, msg, updated.LastError)
	require.False(t, updated.UpdatedAt.IsZero())

	empty := ""
	updated, err = pgSQL.UpdateLead(ctx, stored.ID, storage.LeadUpdates{
		Status:    domain.LeadStatusForwarded,
		LastError: &empty,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, updated.Attempts)
	require.Equal(t, domain.LeadStatusForwarded, updated.Status)
	require.Empty(t, updated.LastError)

	missing, err := pgSQL.UpdateLead(ctx, domain.LeadID(uuid.New()), storage.LeadUpdates{
		Status: domain.LeadStatusFailed,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}
