package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"advisor/pkg/domain"

	"github.com/google/uuid"
)

// PgCandidate is the row representation of a catalog candidate. Set columns are
// stored as jsonb arrays.
type PgCandidate struct {
	ID            string          `db:"id"`
	Countries     json.RawMessage `db:"countries"`
	Exchanges     json.RawMessage `db:"exchanges"`
	Blockchains   json.RawMessage `db:"blockchains"`
	NFTProtocols  json.RawMessage `db:"nft_protocols"`
	DeFiProtocols json.RawMessage `db:"defi_protocols"`
	TrustRating   float64         `db:"trust_rating"`

	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCandidate) ToDomain() (*domain.Candidate, error) {
	c := domain.Candidate{
		ID:          p.ID,
		TrustRating: p.TrustRating,
	}
	columns := []struct {
		name string
		raw  json.RawMessage
		dst  *domain.Set
	}{
		{"countries", p.Countries, &c.Countries},
		{"exchanges", p.Exchanges, &c.Exchanges},
		{"blockchains", p.Blockchains, &c.Blockchains},
		{"nft_protocols", p.NFTProtocols, &c.NFTProtocols},
		{"defi_protocols", p.DeFiProtocols, &c.DeFiProtocols},
	}
	for _, col := range columns {
		if len(col.raw) == 0 {
			continue
		}
		var values []string
		if err := json.Unmarshal(col.raw, &values); err != nil {
			return nil, fmt.Errorf("could not unmarshal %s of candidate %q: %w", col.name, p.ID, err)
		}
		*col.dst = domain.NewSet(values...)
	}

	return &c, nil
}

func (p *PgCandidate) FromDomain(c domain.Candidate) error {
	row := PgCandidate{
		ID:          c.ID,
		TrustRating: c.TrustRating,
	}
	columns := []struct {
		name string
		set  domain.Set
		dst  *json.RawMessage
	}{
		{"countries", c.Countries, &row.Countries},
		{"exchanges", c.Exchanges, &row.Exchanges},
		{"blockchains", c.Blockchains, &row.Blockchains},
		{"nft_protocols", c.NFTProtocols, &row.NFTProtocols},
		{"defi_protocols", c.DeFiProtocols, &row.DeFiProtocols},
	}
	for _, col := range columns {
		values := col.set
		if values == nil {
			values = domain.Set{}
		}
		b, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("could not marshal %s of candidate %q: %w", col.name, c.ID, err)
		}
		*col.dst = b
	}

	*p = row

	return nil
}

// PgLead is the row representation of a captured lead.
type PgLead struct {
	ID             uuid.UUID       `db:"id"              goqu:"skipinsert"`
	Profile        json.RawMessage `db:"profile"`
	Recommended    json.RawMessage `db:"recommended"`
	CatalogVersion string          `db:"catalog_version"`
	Status         string          `db:"status"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() (*domain.Lead, error) {
	var profile domain.Profile
	if err := json.Unmarshal(p.Profile, &profile); err != nil {
		return nil, fmt.Errorf("could not unmarshal lead profile: %w", err)
	}
	var recommended []string
	if len(p.Recommended) > 0 {
		if err := json.Unmarshal(p.Recommended, &recommended); err != nil {
			return nil, fmt.Errorf("could not unmarshal lead recommendations: %w", err)
		}
	}

	return &domain.Lead{
		ID:             domain.LeadID(p.ID),
		Profile:        profile,
		Status:         domain.LeadStatus(p.Status),
		Recommended:    recommended,
		CatalogVersion: p.CatalogVersion,
		Attempts:       p.Attempts,
		LastError:      p.LastError.String,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}, nil
}

func (p *PgLead) FromDomain(lead domain.Lead) error {
	profile, err := json.Marshal(lead.Profile)
	if err != nil {
		return fmt.Errorf("could not marshal lead profile: %w", err)
	}
	recommended := lead.Recommended
	if recommended == nil {
		recommended = []string{}
	}
	rec, err := json.Marshal(recommended)
	if err != nil {
		return fmt.Errorf("could not marshal lead recommendations: %w", err)
	}

	*p = PgLead{
		ID:             uuid.UUID(lead.ID),
		Profile:        profile,
		Recommended:    rec,
		CatalogVersion: lead.CatalogVersion,
		Status:         string(lead.Status),
		Attempts:       lead.Attempts,
		LastError: sql.NullString{
			String: lead.LastError,
			Valid:  lead.LastError != "",
		},
		CreatedAt: lead.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  lead.UpdatedAt,
			Valid: !lead.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func domainCandidatesToPg(candidates []domain.Candidate) ([]PgCandidate, error) {
	out := make([]PgCandidate, len(candidates))
	for i := range out {
		if err := out[i].FromDomain(candidates[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgCandidatesToDomain(rows []PgCandidate) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, 0, len(rows))
	for _, row := range rows {
		c, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *c)
	}

	return out, nil
}
