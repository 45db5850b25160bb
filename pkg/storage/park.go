package storage

import (
	"context"
	"taxipark/pkg/domain"
	"time"
)

// StoredPark is a taxi park together with its bookkeeping fields.
type StoredPark struct {
	ID        domain.ParkID
	Name      string
	CreatedAt time.Time
	Park      domain.TaxiPark
}

// ParkStorage persists taxi parks. A stored park is immutable: there is no
// update operation, matching the read-only nature of the queries run on it.
type ParkStorage interface {
	// StorePark saves the park with all its drivers, passengers and trips
	// atomically and returns the generated id. Trip order is preserved.
	// Trips may reference drivers and passengers that are not part of the
	// park's driver and passenger sets.
	StorePark(ctx context.Context, name string, park domain.TaxiPark) (domain.ParkID, error)
	// ParkByID loads a park. It returns nil when no park has the given id.
	ParkByID(ctx context.Context, id domain.ParkID) (*StoredPark, error)
}
