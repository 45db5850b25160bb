package postgres

import (
	"context"
	"fmt"
	"taxipark/pkg/domain"
	"taxipark/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// StorePark inserts the park and everything it references in a single
// transaction, joining the caller's transaction when there is one.
func (p *PgSQL) StorePark(ctx context.Context, name string, park domain.TaxiPark) (domain.ParkID, error) {
	var id domain.ParkID
	err := p.WithTx(ctx, func(s storage.AllStorage) error {
		tx := s.(*PgSQL) //nolint: forcetypeassert

		var err error
		id, err = tx.storePark(ctx, name, park)

		return err
	})

	return id, err
}

func (p *PgSQL) storePark(ctx context.Context, name string, park domain.TaxiPark) (domain.ParkID, error) {
	var row PgPark
	if _, err := p.Builder.Insert(tableParks).
		Rows(PgPark{Name: name}).
		Returning(&PgPark{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return domain.ParkID{}, fmt.Errorf("could not store park into pg: %w", err)
	}
	id := domain.ParkID(row.ID)

	if err := p.insertMembers(ctx, tableParkDrivers, membersToPg(id, park.AllDrivers)); err != nil {
		return domain.ParkID{}, err
	}
	if err := p.insertMembers(ctx, tableParkPassengers, membersToPg(id, park.AllPassengers)); err != nil {
		return domain.ParkID{}, err
	}
	if err := p.insertTrips(ctx, id, park.Trips); err != nil {
		return domain.ParkID{}, err
	}

	return id, nil
}

func (p *PgSQL) insertMembers(ctx context.Context, table string, rows []PgParkMember) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(table).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return mapError(err, "could not store "+table+" into pg")
	}

	return nil
}

func (p *PgSQL) insertTrips(ctx context.Context, parkID domain.ParkID, trips []domain.Trip) error {
	if len(trips) == 0 {
		return nil
	}

	pgTrips := make([]PgTrip, len(trips))
	for i, trip := range trips {
		pgTrips[i].FromDomain(parkID, i, trip)
	}

	var inserted []PgTrip
	if err := p.Builder.Insert(tableTrips).
		Rows(pgTrips).
		Returning(&PgTrip{}).
		Executor().ScanStructsContext(ctx, &inserted); err != nil {
		return fmt.Errorf("could not store trips into pg: %w", err)
	}

	var passengers []PgTripPassenger
	for _, row := range inserted {
		for _, passenger := range domain.Sorted(trips[row.Position].Passengers) {
			passengers = append(passengers, PgTripPassenger{TripID: row.ID, Passenger: string(passenger)})
		}
	}
	if len(passengers) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(tableTripPassengers).Rows(passengers).Executor().ExecContext(ctx); err != nil {
		return mapError(err, "could not store trip passengers into pg")
	}

	return nil
}

// ParkByID loads a park with its trips in their stored order.
func (p *PgSQL) ParkByID(ctx context.Context, id domain.ParkID) (*storage.StoredPark, error) {
	var row PgPark
	found, err := p.Builder.From(tableParks).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch park by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	park := domain.TaxiPark{
		AllDrivers:    domain.NewSet[domain.Driver](),
		AllPassengers: domain.NewSet[domain.Passenger](),
	}

	var drivers, passengers []string
	if err := p.Builder.From(tableParkDrivers).Select("name").
		Where(goqu.I("park_id").Eq(row.ID)).
		Executor().ScanValsContext(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("could not fetch park drivers: %w", err)
	}
	for _, d := range drivers {
		park.AllDrivers.Add(domain.Driver(d))
	}
	if err := p.Builder.From(tableParkPassengers).Select("name").
		Where(goqu.I("park_id").Eq(row.ID)).
		Executor().ScanValsContext(ctx, &passengers); err != nil {
		return nil, fmt.Errorf("could not fetch park passengers: %w", err)
	}
	for _, pass := range passengers {
		park.AllPassengers.Add(domain.Passenger(pass))
	}

	park.Trips, err = p.parkTrips(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return row.ToDomain(park), nil
}

func (p *PgSQL) parkTrips(ctx context.Context, parkID uuid.UUID) ([]domain.Trip, error) {
	var pgTrips []PgTrip
	if err := p.Builder.From(tableTrips).
		Where(goqu.I("park_id").Eq(parkID)).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &pgTrips); err != nil {
		return nil, fmt.Errorf("could not fetch trips: %w", err)
	}

	trips := make([]domain.Trip, len(pgTrips))
	index := make(map[int64]int, len(pgTrips))
	for i := range pgTrips {
		trips[i] = pgTrips[i].ToDomain()
		index[pgTrips[i].ID] = i
	}
	if len(trips) == 0 {
		return trips, nil
	}

	var rows []PgTripPassenger
	if err := p.Builder.From(goqu.T(tableTripPassengers).As("tp")).
		Select(goqu.I("tp.trip_id"), goqu.I("tp.passenger")).
		Join(goqu.T(tableTrips).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("tp.trip_id")))).
		Where(goqu.I("t.park_id").Eq(parkID)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch trip passengers: %w", err)
	}
	for _, row := range rows {
		trips[index[row.TripID]].Passengers.Add(domain.Passenger(row.Passenger))
	}

	return trips, nil
}
