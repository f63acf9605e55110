package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"advisor/internal/leads"
	"advisor/pkg/domain"
	"advisor/pkg/logger"
	"advisor/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultSnooze is used when the CRM rate limits a request without telling
// when to retry.
const DefaultSnooze = time.Minute

// LeadWorker is a River worker that forwards captured leads to the CRM. All
// jobs handled by one worker share a rate-limit budget so concurrent jobs
// never exceed the allowance the CRM reports.
//
// Outcomes are mapped to River actions: missing or rejected leads cancel the
// job, rate limiting snoozes it until the CRM window resets, any other error
// is returned so River retries with backoff.
type LeadWorker struct {
	river.WorkerDefaults[leads.JobArgs]

	leads  leads.Leads
	budget *budget
}

// NewLeadWorker constructs a LeadWorker forwarding through l.
func NewLeadWorker(l leads.Leads) *LeadWorker {
	return &LeadWorker{
		leads:  l,
		budget: newBudget(),
	}
}

// Work forwards a single lead.
func (w *LeadWorker) Work(ctx context.Context, job *river.Job[leads.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("leadID", job.Args.LeadID.String()),
		zap.Int("attempt", job.Attempt))

	if err := w.budget.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving rate limit", zap.Error(err))

		return fmt.Errorf("could not reserve rate limit: %w", err)
	}

	lastAttempt := job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts
	rl, err := w.leads.Forward(ctx, domain.LeadID(job.Args.LeadID), lastAttempt)
	w.budget.release(ctx, rl)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "lead cannot be forwarded", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in forwarding lead", zap.Error(err))

		if errors.Is(err, serrors.ErrRateLimited) {
			dur := DefaultSnooze
			if rl.Known() {
				dur = max(time.Until(rl.ResetAt), 0)
			}

			return river.JobSnooze(dur) //nolint: wrapcheck
		}

		return fmt.Errorf("could not forward lead: %w", err)
	}

	logger.Info(ctx, "lead forwarded")

	return nil
}
