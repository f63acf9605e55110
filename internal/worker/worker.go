// Package worker processes the advisor's background jobs with river.
package worker

import (
	"context"
	"fmt"
	"time"

	"advisor/internal/config"
	"advisor/internal/leads"
	"advisor/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
)

// Options configure the lead queue.
type Options struct {
	// Workers bounds concurrent deliveries. Values below 1 mean 1.
	Workers int
	// JobTimeout bounds one delivery, including time spent waiting for the
	// CRM's rate limit to reset.
	JobTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		Workers:    cfg.Leads.Workers,
		JobTimeout: cfg.Leads.JobTimeout,
	}
}

// Runner is a started river client working the lead queue.
type Runner struct {
	client *river.Client[pgx.Tx]
}

// Start begins working leads.QueueName with a LeadWorker forwarding through l.
func Start(ctx context.Context, pool *pgxpool.Pool, l leads.Leads, options Options) (*Runner, error) {
	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, NewLeadWorker(l)); err != nil {
		return nil, fmt.Errorf("could not register lead worker: %w", err)
	}

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			leads.QueueName: {MaxWorkers: max(options.Workers, 1)},
		},
		Workers:    workers,
		JobTimeout: options.JobTimeout,
		Logger:     logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := client.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}
	logger.Info(ctx, "lead workers started",
		zap.String("queue", leads.QueueName), zap.Int("workers", max(options.Workers, 1)))

	return &Runner{client: client}, nil
}

// Stop waits for running deliveries to finish or ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	if err := r.client.Stop(ctx); err != nil {
		return fmt.Errorf("could not stop river queue client: %w", err)
	}

	return nil
}
