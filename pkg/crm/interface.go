// Package crm defines the client used to hand captured leads over to the
// sales CRM.
package crm

import (
	"context"
	"time"

	"advisor/pkg/domain"
)

// RateLimitStatus describes the CRM rate-limit budget reported with a response.
// A zero ResetAt means the CRM did not report any limit.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Known reports whether the status carries rate-limit information.
func (s RateLimitStatus) Known() bool { return !s.ResetAt.IsZero() }

// Client delivers leads to a CRM.
//
// ForwardLead errors carry a serrors kind describing how the caller should react:
//   - serrors.ErrRateLimited: retry after the returned ResetAt.
//   - serrors.ErrConflict: the CRM already has this lead.
//   - serrors.ErrBadRequest: the CRM rejected the lead permanently.
//   - serrors.ErrUnavailable or untyped errors: transient failure.
//
//go:generate mockgen -package mockcrm -source=interface.go -destination=mock/mockcrm.go *
type Client interface {
	ForwardLead(ctx context.Context, lead domain.Lead) (RateLimitStatus, error)
}
