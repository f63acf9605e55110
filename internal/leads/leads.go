package leads

import (
	"context"
	"errors"
	"fmt"

	"advisor/internal/config"
	"advisor/pkg/crm"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/serrors"
	"advisor/pkg/storage"

	"go.uber.org/zap"
)

// Options configure how forwarding jobs are enqueued.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when forwarding a lead before marking it failed.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Leads.MaxAttempts,
	}
}

// leads is the concrete implementation of the Leads interface.
type leads struct {
	options Options
	storage storage.Storage
	crm     crm.Client
}

// Capture stores the lead as pending and enqueues a forwarding job in the same
// transaction.
func (l leads) Capture(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	lead.Status = domain.LeadStatusPending

	var stored *domain.Lead
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreLead(ctx, lead)
		if err != nil {
			return fmt.Errorf("could not store lead: %w", err)
		}
		stored = res

		if _, err := tx.AddJob(ctx, NewJobArgs(res.ID, l.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not capture lead: %w", err)
	}

	return stored, nil
}

// Forward sends a pending lead to the CRM. Leads that are no longer pending are
// skipped. A CRM conflict means the lead was delivered before and is treated as
// success.
func (l leads) Forward(ctx context.Context, id domain.LeadID, lastAttempt bool) (crm.RateLimitStatus, error) {
	lead, err := l.storage.LeadByID(ctx, id)
	if err != nil {
		return crm.RateLimitStatus{}, fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		return crm.RateLimitStatus{}, serrors.With(serrors.ErrNotFound, "lead not found")
	}
	if lead.Status != domain.LeadStatusPending {
		logger.Debug(ctx, "lead already handled, skipping", zap.String("status", string(lead.Status)))

		return crm.RateLimitStatus{}, nil
	}

	rl, fwdErr := l.crm.ForwardLead(ctx, *lead)

	updates := storage.LeadUpdates{Status: domain.LeadStatusPending}
	switch {
	case fwdErr == nil || errors.Is(fwdErr, serrors.ErrConflict):
		empty := ""
		updates = storage.LeadUpdates{Status: domain.LeadStatusForwarded, LastError: &empty}
		fwdErr = nil
	case errors.Is(fwdErr, serrors.ErrBadRequest) || (lastAttempt && !errors.Is(fwdErr, serrors.ErrRateLimited)):
		msg := fwdErr.Error()
		updates = storage.LeadUpdates{Status: domain.LeadStatusFailed, LastError: &msg}
	default:
		msg := fwdErr.Error()
		updates.LastError = &msg
	}

	if _, err := l.storage.UpdateLead(ctx, id, updates); err != nil {
		if fwdErr != nil {
			return rl, errors.Join(fwdErr, fmt.Errorf("could not update lead: %w", err))
		}

		return rl, fmt.Errorf("could not update lead: %w", err)
	}

	if fwdErr != nil {
		return rl, fmt.Errorf("could not forward lead: %w", fwdErr)
	}

	return rl, nil
}

// New creates a new Leads instance backed by the provided storage and CRM
// client and configured with the given options.
func New(storage storage.Storage, crm crm.Client, options Options) Leads {
	return &leads{
		options: options,
		storage: storage,
		crm:     crm,
	}
}
