package analyzer

import (
	"context"
	"taxipark/pkg/domain"
)

//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	Import(ctx context.Context, name string, park domain.TaxiPark) (domain.ParkID, error)
	Analyze(ctx context.Context, parkID domain.ParkID) (*domain.ParkReport, error)
	Report(ctx context.Context, parkID domain.ParkID) (*domain.ParkReport, error)
}
