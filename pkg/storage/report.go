package storage

import (
	"context"
	"taxipark/pkg/domain"
)

// ReportStorage persists the latest analysis report of each park.
type ReportStorage interface {
	// StoreReport inserts or replaces the report of report.ParkID. It returns
	// an error of kind serrors.ErrNotFound when the park does not exist.
	StoreReport(ctx context.Context, report domain.ParkReport) error
	// ReportByParkID returns the latest report of a park, or nil when the park
	// was never analysed.
	ReportByParkID(ctx context.Context, id domain.ParkID) (*domain.ParkReport, error)
}
