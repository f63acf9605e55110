// Package leads captures questionnaire submissions and forwards them to the CRM
// through background jobs.
package leads

import (
	"context"

	"advisor/pkg/crm"
	"advisor/pkg/domain"
)

//go:generate mockgen -package mockleads -source=interface.go -destination=mock/mockleads.go *
type Leads interface {
	// Capture stores a pending lead and enqueues its forwarding job atomically.
	Capture(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	// Forward delivers a pending lead to the CRM and records the outcome. When
	// lastAttempt is set a transient failure marks the lead as failed.
	Forward(ctx context.Context, id domain.LeadID, lastAttempt bool) (crm.RateLimitStatus, error)
}
