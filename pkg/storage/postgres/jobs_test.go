package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"advisor/internal/leads"
	"advisor/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg := newTestStorage(t)

	ctx := context.Background()

	// Start a transaction to force the *sql.Tx code path in AddJob.
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	args := leads.JobArgs{LeadID: uuid.New()}
	inserted, err := txStorage.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&args,
		nil,
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg := newTestStorage(t)

	ctx := context.Background()

	args := leads.JobArgs{LeadID: uuid.New()}
	inserted, err := pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, inserted)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&args,
		nil,
	)
}

func TestPgSQL_AddJob_SameLeadIsQueuedOnce(t *testing.T) {
	pg := newTestStorage(t)

	ctx := context.Background()

	args := leads.JobArgs{LeadID: uuid.New()}
	inserted, err := pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.False(t, inserted, "duplicate forwarding job should be skipped")
}
