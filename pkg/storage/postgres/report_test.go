package postgres_test

import (
	"context"
	"testing"
	"time"

	"taxipark/pkg/domain"
	"taxipark/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreReport_Upsert(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	id, err := pg.StorePark(ctx, "downtown", samplePark())
	require.NoError(t, err)

	report, err := pg.ReportByParkID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, report)

	first := domain.ParkReport{
		ParkID:             id,
		FakeDrivers:        []domain.Driver{"D-2"},
		FaithfulMinTrips:   1,
		FaithfulPassengers: []domain.Passenger{"P-0", "P-1", "P-9"},
		FrequentPassengers: map[domain.Driver][]domain.Passenger{"D-0": {}, "D-1": {}, "D-2": {}},
		SmartPassengers:    []domain.Passenger{"P-0", "P-1"},
		MostFrequentPeriod: &domain.Period{Start: 0, End: 9},
		ParetoPrinciple:    false,
		CreatedAt:          time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, pg.StoreReport(ctx, first))

	report, err = pg.ReportByParkID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, &first, report)

	second := first
	second.FaithfulMinTrips = 2
	second.FaithfulPassengers = []domain.Passenger{"P-1"}
	second.ParetoPrinciple = true
	require.NoError(t, pg.StoreReport(ctx, second))

	report, err = pg.ReportByParkID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, &second, report)
}

func TestPgSQL_StoreReport_UnknownPark(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	err := pg.StoreReport(context.Background(), domain.ParkReport{ParkID: domain.ParkID(uuid.New())})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
