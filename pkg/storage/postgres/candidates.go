package postgres

import (
	"context"
	"fmt"

	"advisor/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	candidatesTable = "candidates"
)

// Candidates returns every catalog candidate ordered by id.
func (p *PgSQL) Candidates(ctx context.Context) ([]domain.Candidate, error) {
	var rows []PgCandidate
	if err := p.Builder.From(candidatesTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch candidates from pg: %w", err)
	}

	return pgCandidatesToDomain(rows)
}

// UpsertCandidates inserts candidates, replacing the stored columns of any
// existing row with the same id.
func (p *PgSQL) UpsertCandidates(ctx context.Context, candidates ...domain.Candidate) (int64, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	rows, err := domainCandidatesToPg(candidates)
	if err != nil {
		return 0, err
	}

	res, err := p.Builder.Insert(candidatesTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"countries":      goqu.L("EXCLUDED.countries"),
			"exchanges":      goqu.L("EXCLUDED.exchanges"),
			"blockchains":    goqu.L("EXCLUDED.blockchains"),
			"nft_protocols":  goqu.L("EXCLUDED.nft_protocols"),
			"defi_protocols": goqu.L("EXCLUDED.defi_protocols"),
			"trust_rating":   goqu.L("EXCLUDED.trust_rating"),
			"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not upsert candidates into pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get upserted rows count: %w", err)
	}

	return n, nil
}

// DeleteCandidatesExcept removes all candidates whose id is not listed in keep.
// An empty keep list removes every candidate.
func (p *PgSQL) DeleteCandidatesExcept(ctx context.Context, keep []string) (int64, error) {
	ds := p.Builder.Delete(candidatesTable)
	if len(keep) > 0 {
		ds = ds.Where(goqu.I("id").NotIn(keep))
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete candidates from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get deleted rows count: %w", err)
	}

	return n, nil
}
