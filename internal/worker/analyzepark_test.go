package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"taxipark/internal/analyzer"
	mockanalyzer "taxipark/internal/analyzer/mock"
	"taxipark/internal/worker"
	"taxipark/pkg/domain"
	"taxipark/pkg/logger"
	"taxipark/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, parkID domain.ParkID) *river.Job[analyzer.JobArgs] {
	return &river.Job[analyzer.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   analyzer.NewJobArgs(parkID, 3),
	}
}

func TestAnalyzeParkWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalyzeParkWorker(mock)

	parkID := domain.ParkID(uuid.New())
	mock.EXPECT().Analyze(gomock.Any(), parkID).Return(&domain.ParkReport{ParkID: parkID}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, parkID)))
}

func TestAnalyzeParkWorker_Work_NotFoundCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalyzeParkWorker(mock)

	parkID := domain.ParkID(uuid.New())
	mock.EXPECT().Analyze(gomock.Any(), parkID).Return(nil, serrors.With(serrors.ErrNotFound, "park not found"))

	err := w.Work(context.Background(), makeJob(2, parkID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAnalyzeParkWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockanalyzer.NewMockAnalyzer(ctrl)
	w := worker.NewAnalyzeParkWorker(mock)

	parkID := domain.ParkID(uuid.New())
	mock.EXPECT().Analyze(gomock.Any(), parkID).Return(nil, errors.New("db down"))

	err := w.Work(context.Background(), makeJob(3, parkID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestJobArgs_InsertOpts(t *testing.T) {
	args := analyzer.NewJobArgs(domain.ParkID(uuid.New()), 4)

	require.Equal(t, "AnalyzeParkJob", args.Kind())
	opts := args.InsertOpts()
	require.Equal(t, 4, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}
