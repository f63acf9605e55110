package leads

import (
	"advisor/pkg/domain"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// QueueName is the river queue lead forwarding jobs are inserted into.
const QueueName = "leads"

// JobArgs asks a worker to deliver one lead to the CRM. Jobs are unique by
// lead so a lead is queued at most once while its job is alive.
type JobArgs struct {
	LeadID uuid.UUID `json:"leadID" river:"unique"`

	maxAttempts int
}

// NewJobArgs returns the forwarding job of lead id. A non-positive
// maxAttempts falls back to river's default.
func NewJobArgs(id domain.LeadID, maxAttempts int) JobArgs {
	return JobArgs{LeadID: uuid.UUID(id), maxAttempts: maxAttempts}
}

func (args JobArgs) Kind() string { return "forward_lead" }

func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueName,
		MaxAttempts: args.maxAttempts,
		UniqueOpts:  river.UniqueOpts{ByArgs: true},
	}
}
