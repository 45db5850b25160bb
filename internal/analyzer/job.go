package analyzer

import (
	"taxipark/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs are the arguments of a park analysis job submitted to River.
type JobArgs struct {
	// ParkID is the park to analyse. Only one unfinished job may exist per park.
	ParkID domain.ParkID `json:"parkId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs returns the arguments of an analysis job for parkID.
func NewJobArgs(parkID domain.ParkID, maxAttempts int) JobArgs {
	return JobArgs{ParkID: parkID, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the analysis worker.
func (args JobArgs) Kind() string { return "AnalyzeParkJob" }

// InsertOpts deduplicates jobs of the same park that have not finished yet.
// Completed jobs are excluded so that a park can be analysed again.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
