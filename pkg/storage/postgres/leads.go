package postgres

import (
	"context"
	"fmt"

	"advisor/pkg/domain"
	"advisor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	leadsTable = "leads"
)

// StoreLead inserts a lead and returns the stored row with its generated id
// and timestamps.
func (p *PgSQL) StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	var row PgLead
	if err := row.FromDomain(lead); err != nil {
		return nil, err
	}

	var result PgLead
	found, err := p.Builder.Insert(leadsTable).
		Rows(row).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store lead into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store lead into pg: no row returned")
	}

	return result.ToDomain()
}

// LeadByID returns the lead with the given id or nil when it does not exist.
func (p *PgSQL) LeadByID(ctx context.Context, id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UpdateLead sets the status and optionally the last error of a lead. Attempts
// is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdateLead(ctx context.Context, id domain.LeadID, updates storage.LeadUpdates) (*domain.Lead, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update lead in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
