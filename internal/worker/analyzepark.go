package worker

import (
	"context"
	"errors"
	"fmt"
	"taxipark/internal/analyzer"
	"taxipark/pkg/logger"
	"taxipark/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AnalyzeParkWorker builds and stores the report of an imported park.
//
// A park that no longer exists cancels the job since retrying cannot help.
// Any other error is returned so River retries the job with backoff until
// its attempts are exhausted.
type AnalyzeParkWorker struct {
	river.WorkerDefaults[analyzer.JobArgs]

	analyzer analyzer.Analyzer
}

// NewAnalyzeParkWorker constructs an AnalyzeParkWorker using the provided analyzer.
func NewAnalyzeParkWorker(analyzer analyzer.Analyzer) *AnalyzeParkWorker {
	return &AnalyzeParkWorker{analyzer: analyzer}
}

func (w *AnalyzeParkWorker) Work(ctx context.Context, job *river.Job[analyzer.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("parkID", job.Args.ParkID))

	report, err := w.analyzer.Analyze(ctx, job.Args.ParkID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "cancelling park analysis", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in analysing park", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not analyse park: %w", err)
	}

	logger.Info(ctx, "park analysed successfully",
		zap.Int("fakeDrivers", len(report.FakeDrivers)),
		zap.Bool("paretoPrinciple", report.ParetoPrinciple))

	return nil
}
