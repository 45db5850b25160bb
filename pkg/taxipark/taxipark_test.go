package taxipark_test

import (
	"fmt"
	"taxipark/pkg/domain"
	"taxipark/pkg/taxipark"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func driver(i int) domain.Driver       { return domain.Driver(fmt.Sprintf("D-%d", i)) }
func passenger(i int) domain.Passenger { return domain.Passenger(fmt.Sprintf("P-%d", i)) }

func drivers(indices ...int) domain.Set[domain.Driver] {
	s := domain.NewSet[domain.Driver]()
	for _, i := range indices {
		s.Add(driver(i))
	}

	return s
}

func passengers(indices ...int) domain.Set[domain.Passenger] {
	s := domain.NewSet[domain.Passenger]()
	for _, i := range indices {
		s.Add(passenger(i))
	}

	return s
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// park builds a park with drivers D-0..D-(nDrivers-1) and passengers
// P-0..P-(nPassengers-1).
func park(nDrivers, nPassengers int, trips ...domain.Trip) domain.TaxiPark {
	return domain.TaxiPark{
		AllDrivers:    drivers(indices(nDrivers)...),
		AllPassengers: passengers(indices(nPassengers)...),
		Trips:         trips,
	}
}

func trip(d int, ps []int, duration int, cost float64) domain.Trip {
	return domain.Trip{
		Driver:     driver(d),
		Passengers: passengers(ps...),
		Duration:   duration,
		Cost:       cost,
	}
}

func discounted(t domain.Trip, discount float64) domain.Trip {
	t.Discount = &discount

	return t
}

func TestFindFakeDrivers(t *testing.T) {
	tests := []struct {
		name string
		park domain.TaxiPark
		want domain.Set[domain.Driver]
	}{
		{
			name: "driver without trips is fake",
			park: park(2, 1, trip(0, []int{0}, 10, 10)),
			want: drivers(1),
		},
		{
			name: "every driver has trips",
			park: park(2, 1, trip(0, []int{0}, 10, 10), trip(1, []int{0}, 10, 10)),
			want: drivers(),
		},
		{
			name: "no trips makes every driver fake",
			park: park(3, 0),
			want: drivers(0, 1, 2),
		},
		{
			name: "unknown trip driver is ignored",
			park: park(1, 1, trip(9, []int{0}, 10, 10)),
			want: drivers(0),
		},
		{
			name: "empty park",
			park: domain.TaxiPark{},
			want: drivers(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, taxipark.FindFakeDrivers(tt.park)); diff != "" {
				t.Errorf("FindFakeDrivers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindFaithfulPassengers(t *testing.T) {
	p := park(2, 4,
		trip(0, []int{0, 1}, 10, 10),
		trip(1, []int{0}, 10, 10),
		trip(1, []int{0, 2, 9}, 10, 10),
		trip(0, []int{9}, 10, 10),
	)

	tests := []struct {
		name     string
		park     domain.TaxiPark
		minTrips int
		want     domain.Set[domain.Passenger]
	}{
		{name: "zero selects everyone", park: p, minTrips: 0, want: passengers(0, 1, 2, 3)},
		{name: "negative selects everyone", park: p, minTrips: -1, want: passengers(0, 1, 2, 3)},
		{name: "at least one trip", park: p, minTrips: 1, want: passengers(0, 1, 2)},
		{name: "trips are counted individually", park: p, minTrips: 3, want: passengers(0)},
		{name: "nobody reaches the threshold", park: p, minTrips: 4, want: passengers()},
		{name: "empty park", park: domain.TaxiPark{}, minTrips: 0, want: passengers()},
		{name: "no trips with zero threshold", park: park(0, 2), minTrips: 0, want: passengers(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taxipark.FindFaithfulPassengers(tt.park, tt.minTrips)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindFaithfulPassengers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindFrequentPassengers(t *testing.T) {
	p := park(3, 4,
		trip(0, []int{0, 1}, 10, 10),
		trip(0, []int{0, 2}, 10, 10),
		trip(1, []int{1, 3}, 10, 10),
		trip(1, []int{3, 9}, 10, 10),
		trip(1, []int{9}, 10, 10),
	)

	tests := []struct {
		name   string
		driver domain.Driver
		want   domain.Set[domain.Passenger]
	}{
		{name: "two trips included and one trip excluded", driver: driver(0), want: passengers(0)},
		{name: "unknown passengers are ignored", driver: driver(1), want: passengers(3)},
		{name: "driver without trips", driver: driver(2), want: passengers()},
		{name: "driver missing from the park", driver: driver(42), want: passengers()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taxipark.FindFrequentPassengers(p, tt.driver)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindFrequentPassengers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindSmartPassengers(t *testing.T) {
	tests := []struct {
		name string
		park domain.TaxiPark
		want domain.Set[domain.Passenger]
	}{
		{
			name: "majority of discounted trips",
			park: park(1, 1,
				discounted(trip(0, []int{0}, 10, 10), 0.1),
				discounted(trip(0, []int{0}, 10, 10), 0.2),
				discounted(trip(0, []int{0}, 10, 10), 0.3),
				trip(0, []int{0}, 10, 10),
			),
			want: passengers(0),
		},
		{
			name: "equal counts are not enough",
			park: park(1, 1,
				discounted(trip(0, []int{0}, 10, 10), 0.1),
				trip(0, []int{0}, 10, 10),
			),
			want: passengers(),
		},
		{
			name: "zero discount still counts as discounted",
			park: park(1, 1, discounted(trip(0, []int{0}, 10, 10), 0)),
			want: passengers(0),
		},
		{
			name: "passenger without trips is excluded",
			park: park(1, 2, discounted(trip(0, []int{0}, 10, 10), 0.5)),
			want: passengers(0),
		},
		{
			name: "empty park",
			park: domain.TaxiPark{},
			want: passengers(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, taxipark.FindSmartPassengers(tt.park)); diff != "" {
				t.Errorf("FindSmartPassengers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindTheMostFrequentTripDurationPeriod(t *testing.T) {
	tests := []struct {
		name   string
		park   domain.TaxiPark
		want   domain.Period
		wantOK bool
	}{
		{
			name:   "no trips",
			park:   park(1, 1),
			wantOK: false,
		},
		{
			name:   "single trip",
			park:   park(1, 1, trip(0, []int{0}, 12, 10)),
			want:   domain.Period{Start: 10, End: 19},
			wantOK: true,
		},
		{
			name:   "zero duration",
			park:   park(1, 1, trip(0, []int{0}, 0, 10)),
			want:   domain.Period{Start: 0, End: 9},
			wantOK: true,
		},
		{
			name: "period boundaries",
			park: park(1, 1,
				trip(0, []int{0}, 9, 10),
				trip(0, []int{0}, 10, 10),
				trip(0, []int{0}, 19, 10),
				trip(0, []int{0}, 30, 10),
			),
			want:   domain.Period{Start: 10, End: 19},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := taxipark.FindTheMostFrequentTripDurationPeriod(tt.park)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindTheMostFrequentTripDurationPeriod_Tie(t *testing.T) {
	durations := []int{1, 5, 15, 16, 42}
	trips := make([]domain.Trip, 0, len(durations))
	for _, d := range durations {
		trips = append(trips, trip(0, []int{0}, d, 10))
	}

	got, ok := taxipark.FindTheMostFrequentTripDurationPeriod(park(1, 1, trips...))
	require.True(t, ok)
	require.Equal(t, got.Start+9, got.End)

	// any of the tied periods is acceptable as long as it holds the maximum
	count := 0
	for _, d := range durations {
		if got.Contains(d) {
			count++
		}
	}
	require.Equal(t, 2, count)
}

func TestCheckParetoPrinciple(t *testing.T) {
	tests := []struct {
		name string
		park domain.TaxiPark
		want bool
	}{
		{
			name: "no trips",
			park: park(5, 1),
			want: false,
		},
		{
			name: "single driver earns everything among five drivers",
			park: park(5, 1, trip(0, []int{0}, 10, 100), trip(0, []int{0}, 10, 50)),
			want: true,
		},
		{
			name: "four drivers truncate the top share to zero",
			park: park(4, 1, trip(0, []int{0}, 10, 100), trip(0, []int{0}, 10, 50)),
			want: false,
		},
		{
			name: "top two of ten earn just above the share",
			park: park(10, 1,
				trip(0, []int{0}, 10, 51),
				trip(1, []int{0}, 10, 30),
				trip(2, []int{0}, 10, 10),
				trip(3, []int{0}, 10, 9),
			),
			want: true,
		},
		{
			name: "top two of ten earn just below the share",
			park: park(10, 1,
				trip(0, []int{0}, 10, 49),
				trip(1, []int{0}, 10, 30),
				trip(2, []int{0}, 10, 11),
				trip(3, []int{0}, 10, 10),
			),
			want: false,
		},
		{
			name: "drivers without trips only count towards the cutoff",
			park: park(5, 1,
				trip(0, []int{0}, 10, 40),
				trip(1, []int{0}, 10, 40),
				trip(2, []int{0}, 10, 20),
			),
			want: false,
		},
		{
			name: "income of unknown drivers is part of the total",
			park: park(5, 1,
				trip(0, []int{0}, 10, 90),
				trip(7, []int{0}, 10, 10),
			),
			want: true,
		},
		{
			name: "zero income with zero cutoff",
			park: park(1, 1, trip(0, []int{0}, 10, 0)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, taxipark.CheckParetoPrinciple(tt.park))
		})
	}
}
