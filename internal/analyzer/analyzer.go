// Package analyzer imports taxi parks, runs the park queries on them and
// keeps the latest report of each park.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"taxipark/internal/config"
	"taxipark/pkg/domain"
	"taxipark/pkg/serrors"
	"taxipark/pkg/storage"
)

// Options configure how parks are analysed.
type Options struct {
	// FaithfulMinTrips is the threshold used for faithful passengers.
	FaithfulMinTrips int
	// MaxAttempts is the maximum number of attempts the background worker
	// makes for an analysis job before discarding it.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FaithfulMinTrips: cfg.Analyzer.FaithfulMinTrips,
		MaxAttempts:      cfg.Analyzer.MaxAttempts,
	}
}

type analyzer struct {
	options  Options
	storage  storage.Storage
	reporter *Reporter
}

// Import stores the park and enqueues its analysis in the same transaction,
// so a park is never stored without a pending job.
func (a analyzer) Import(ctx context.Context, name string, park domain.TaxiPark) (domain.ParkID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ParkID{}, serrors.With(serrors.ErrBadRequest, "park name is required")
	}

	var id domain.ParkID
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		id, err = tx.StorePark(ctx, name, park)
		if err != nil {
			return fmt.Errorf("could not store park: %w", err)
		}

		if _, err := tx.AddJob(ctx, NewJobArgs(id, a.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return domain.ParkID{}, fmt.Errorf("could not import park: %w", err)
	}

	return id, nil
}

// Analyze builds a fresh report for a stored park and replaces its previous
// report.
func (a analyzer) Analyze(ctx context.Context, parkID domain.ParkID) (*domain.ParkReport, error) {
	stored, err := a.storage.ParkByID(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("could not get park: %w", err)
	}
	if stored == nil {
		return nil, serrors.With(serrors.ErrNotFound, "park not found")
	}

	report := a.reporter.Build(ctx, parkID, stored.Park, a.options.FaithfulMinTrips)
	if err := a.storage.StoreReport(ctx, report); err != nil {
		return nil, fmt.Errorf("could not store report: %w", err)
	}

	return &report, nil
}

// Report returns the latest stored report of a park.
func (a analyzer) Report(ctx context.Context, parkID domain.ParkID) (*domain.ParkReport, error) {
	report, err := a.storage.ReportByParkID(ctx, parkID)
	if err != nil {
		return nil, fmt.Errorf("could not get report: %w", err)
	}
	if report == nil {
		return nil, serrors.With(serrors.ErrNotFound, "report not found")
	}

	return report, nil
}

// New creates a new Analyzer backed by the provided storage.
func New(storage storage.Storage, reporter *Reporter, options Options) Analyzer {
	return &analyzer{
		options:  options,
		storage:  storage,
		reporter: reporter,
	}
}
