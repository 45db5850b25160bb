package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the data they
// operate on, so a job can be inserted atomically with the rows it refers to.
type JobStorage interface {
	// AddJob enqueues a job. When called on a TxStorage the job only becomes
	// visible once the transaction commits. The returned bool is false when
	// the job was skipped as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
