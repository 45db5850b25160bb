package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"taxipark/pkg/domain"
	"taxipark/pkg/storage"
	"time"

	"github.com/google/uuid"
)

const (
	tableParks          = "parks"
	tableParkDrivers    = "park_drivers"
	tableParkPassengers = "park_passengers"
	tableTrips          = "trips"
	tableTripPassengers = "trip_passengers"
	tableParkReports    = "park_reports"
)

type PgPark struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

// PgParkMember is a row of park_drivers or park_passengers.
type PgParkMember struct {
	ParkID uuid.UUID `db:"park_id"`
	Name   string    `db:"name"`
}

type PgTrip struct {
	ID       int64           `db:"id"       goqu:"skipinsert"`
	ParkID   uuid.UUID       `db:"park_id"`
	Position int             `db:"position"`
	Driver   string          `db:"driver"`
	Duration int             `db:"duration"`
	Cost     float64         `db:"cost"`
	Discount sql.NullFloat64 `db:"discount"`
}

type PgTripPassenger struct {
	TripID    int64  `db:"trip_id"`
	Passenger string `db:"passenger"`
}

type PgReport struct {
	ParkID    uuid.UUID       `db:"park_id"`
	Report    json.RawMessage `db:"report"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime    `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTrip) FromDomain(parkID domain.ParkID, position int, trip domain.Trip) {
	*p = PgTrip{
		ParkID:   uuid.UUID(parkID),
		Position: position,
		Driver:   string(trip.Driver),
		Duration: trip.Duration,
		Cost:     trip.Cost,
	}
	if trip.Discount != nil {
		p.Discount = sql.NullFloat64{Float64: *trip.Discount, Valid: true}
	}
}

// ToDomain converts the row; passengers are attached by the caller.
func (p *PgTrip) ToDomain() domain.Trip {
	trip := domain.Trip{
		Driver:     domain.Driver(p.Driver),
		Passengers: domain.NewSet[domain.Passenger](),
		Duration:   p.Duration,
		Cost:       p.Cost,
	}
	if p.Discount.Valid {
		discount := p.Discount.Float64
		trip.Discount = &discount
	}

	return trip
}

func (p *PgReport) FromDomain(report domain.ParkReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("could not marshal park report: %w", err)
	}

	*p = PgReport{
		ParkID: uuid.UUID(report.ParkID),
		Report: raw,
	}

	return nil
}

func (p *PgReport) ToDomain() (*domain.ParkReport, error) {
	var report domain.ParkReport
	if err := json.Unmarshal(p.Report, &report); err != nil {
		return nil, fmt.Errorf("could not unmarshal park report: %w", err)
	}
	report.ParkID = domain.ParkID(p.ParkID)

	return &report, nil
}

func (p *PgPark) ToDomain(park domain.TaxiPark) *storage.StoredPark {
	return &storage.StoredPark{
		ID:        domain.ParkID(p.ID),
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		Park:      park,
	}
}

func membersToPg[T ~string](parkID domain.ParkID, set domain.Set[T]) []PgParkMember {
	names := domain.Sorted(set)
	out := make([]PgParkMember, len(names))
	for i, name := range names {
		out[i] = PgParkMember{ParkID: uuid.UUID(parkID), Name: string(name)}
	}

	return out
}
