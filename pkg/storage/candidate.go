package storage

import (
	"context"

	"advisor/pkg/domain"
)

// CatalogReader loads the reference candidates. It is implemented by every
// catalog source, including read-only ones.
type CatalogReader interface {
	// Candidates returns all candidates ordered by ID.
	Candidates(ctx context.Context) ([]domain.Candidate, error)
}

// CandidateStorage is a writable catalog source.
type CandidateStorage interface {
	CatalogReader

	// UpsertCandidates inserts the given candidates or replaces existing ones
	// with the same ID. It returns the number of written rows.
	UpsertCandidates(ctx context.Context, candidates ...domain.Candidate) (int64, error)
	// DeleteCandidatesExcept removes every candidate whose ID is not in keep and
	// returns the number of removed rows.
	DeleteCandidatesExcept(ctx context.Context, keep []string) (int64, error)
}
