package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"advisor/pkg/crm"
	"advisor/pkg/logger"

	"go.uber.org/zap"
)

// budget shares the CRM rate-limit allowance between concurrent jobs.
//
// The effective allowance is last.Remaining, or last.Limit once last.ResetAt
// has passed. A request may start when the allowance exceeds the number of
// requests in flight; otherwise reserve waits until the window resets or
// another request finishes.
//
// Until the CRM has answered once, a single probe request is allowed. If the
// CRM answers without rate-limit headers the budget is unlimited until a
// response reports a limit again.
type budget struct {
	// mu guards the fields below.
	mu        sync.Mutex
	inFlight  int
	last      *crm.RateLimitStatus
	unlimited bool
	// finished is closed and replaced whenever a request completes.
	finished chan struct{}
}

func newBudget() *budget {
	return &budget{finished: make(chan struct{})}
}

// reserve blocks until a request may be sent or ctx is done.
func (b *budget) reserve(ctx context.Context) error {
	for {
		b.mu.Lock()

		remaining := 1
		var resetAt time.Time
		if b.last != nil {
			remaining = b.last.Remaining
			resetAt = b.last.ResetAt
			if time.Now().After(resetAt) {
				remaining = b.last.Limit
			}
		}

		if b.unlimited || remaining-b.inFlight > 0 {
			b.inFlight++
			b.mu.Unlock()

			return nil
		}

		inFlight := b.inFlight
		finished := b.finished
		b.mu.Unlock()

		logger.Debug(ctx, "waiting for crm rate limit",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		var reset <-chan time.Time
		if !resetAt.IsZero() {
			reset = time.After(time.Until(resetAt))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-finished:
			continue
		case <-reset:
			continue
		}
	}
}

// release returns a reservation and merges the status reported by the CRM.
// Statuses from an older window are ignored. Within the same window the lower
// Remaining wins.
func (b *budget) release(ctx context.Context, status crm.RateLimitStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.inFlight > 0 {
		b.inFlight--
	}

	close(b.finished)
	b.finished = make(chan struct{})

	if !status.Known() {
		if b.last == nil {
			b.unlimited = true
		}

		return
	}

	b.unlimited = false
	if b.last != nil {
		if status.ResetAt.Before(b.last.ResetAt) {
			return
		}
		if status.ResetAt.Equal(b.last.ResetAt) && status.Remaining >= b.last.Remaining {
			return
		}
	}

	b.last = &status
	logger.Debug(ctx, "crm rate limit updated",
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", b.inFlight))
}
