package storage

import (
	"context"

	"advisor/pkg/domain"
)

// LeadUpdates describes the fields applied to a lead after a delivery attempt.
type LeadUpdates struct {
	// Status is the new status of the lead.
	Status domain.LeadStatus
	// LastError, when provided, sets the last error text. An empty string value
	// clears it.
	LastError *string
}

// LeadStorage persists captured leads.
type LeadStorage interface {
	// StoreLead inserts a lead and returns it with generated fields set.
	StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	// LeadByID returns the lead with the given ID, or nil when not found.
	LeadByID(ctx context.Context, id domain.LeadID) (*domain.Lead, error)
	// UpdateLead applies updates, increments attempts and returns the updated
	// lead, or nil when not found.
	UpdateLead(ctx context.Context, id domain.LeadID, updates LeadUpdates) (*domain.Lead, error)
}
