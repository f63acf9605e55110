package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs, such as forwarding a lead to the CRM.
type JobStorage interface {
	// AddJob inserts a job, joining the handle's transaction if there is one.
	// It reports false when an identical unique job is already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
