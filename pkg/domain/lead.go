package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadID uniquely identifies a captured lead.
type LeadID uuid.UUID

// String returns the canonical UUID form.
func (id LeadID) String() string { return uuid.UUID(id).String() }

// LeadStatus represents the forwarding state of a lead.
type LeadStatus string

const (
	// LeadStatusPending indicates the lead has not been delivered to the CRM yet.
	LeadStatusPending LeadStatus = "PENDING"
	// LeadStatusForwarded indicates the CRM accepted the lead.
	LeadStatusForwarded LeadStatus = "FORWARDED"
	// LeadStatusFailed indicates the CRM permanently rejected the lead.
	LeadStatusFailed LeadStatus = "FAILED"
)

// Lead is a questionnaire submission together with the products recommended for it.
type Lead struct {
	ID      LeadID     `json:"id"`
	Profile Profile    `json:"profile"`
	Status  LeadStatus `json:"status"`
	// Recommended holds the returned candidate IDs in rank order.
	Recommended []string `json:"recommended"`
	// CatalogVersion is the catalog the recommendations were computed against.
	CatalogVersion string `json:"catalogVersion"`
	// Attempts counts delivery attempts.
	Attempts  uint      `json:"attempts"`
	LastError string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
