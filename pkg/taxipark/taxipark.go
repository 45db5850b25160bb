// Package taxipark implements read-only analytical queries over a taxi park
// dataset. Every query is a pure function of its arguments: the park is never
// modified, so any number of queries may run concurrently over the same park.
//
// Trips may reference drivers and passengers that are missing from
// TaxiPark.AllDrivers and TaxiPark.AllPassengers. Queries returning drivers or
// passengers only ever return members of those two sets.
package taxipark

import (
	"cmp"
	"maps"
	"slices"
	"taxipark/pkg/domain"
)

const (
	// periodLength is the width of a duration period in minutes.
	periodLength = 10

	// paretoDriversPercent of all drivers must earn paretoIncomeShare of the income.
	paretoDriversPercent = 20
	paretoIncomeShare    = 0.8
)

// FindFakeDrivers returns the drivers of the park who performed no trips.
func FindFakeDrivers(park domain.TaxiPark) domain.Set[domain.Driver] {
	active := make(domain.Set[domain.Driver], len(park.Trips))
	for _, trip := range park.Trips {
		active.Add(trip.Driver)
	}

	fake := domain.NewSet[domain.Driver]()
	for driver := range park.AllDrivers {
		if !active.Contains(driver) {
			fake.Add(driver)
		}
	}

	return fake
}

// FindFaithfulPassengers returns the passengers of the park who completed at
// least minTrips trips. A minTrips of zero or less selects every passenger.
func FindFaithfulPassengers(park domain.TaxiPark, minTrips int) domain.Set[domain.Passenger] {
	counts := tripsPerPassenger(park.Trips, func(domain.Trip) bool { return true })

	faithful := domain.NewSet[domain.Passenger]()
	for passenger := range park.AllPassengers {
		if counts[passenger] >= minTrips {
			faithful.Add(passenger)
		}
	}

	return faithful
}

// FindFrequentPassengers returns the passengers of the park who were taken by
// the given driver more than once.
func FindFrequentPassengers(park domain.TaxiPark, driver domain.Driver) domain.Set[domain.Passenger] {
	counts := tripsPerPassenger(park.Trips, func(t domain.Trip) bool { return t.Driver == driver })

	frequent := domain.NewSet[domain.Passenger]()
	for passenger := range park.AllPassengers {
		if counts[passenger] > 1 {
			frequent.Add(passenger)
		}
	}

	return frequent
}

// FindSmartPassengers returns the passengers of the park who had a discount on
// strictly more of their trips than they paid in full.
func FindSmartPassengers(park domain.TaxiPark) domain.Set[domain.Passenger] {
	discounted := tripsPerPassenger(park.Trips, domain.Trip.HasDiscount)
	full := tripsPerPassenger(park.Trips, func(t domain.Trip) bool { return !t.HasDiscount() })

	smart := domain.NewSet[domain.Passenger]()
	for passenger := range park.AllPassengers {
		if discounted[passenger] > full[passenger] {
			smart.Add(passenger)
		}
	}

	return smart
}

// FindTheMostFrequentTripDurationPeriod groups trips into ten minute periods
// (0..9, 10..19, ...) and returns the period holding the most trips. When
// several periods tie, the one with the lowest start is returned. ok is false
// when the park has no trips.
func FindTheMostFrequentTripDurationPeriod(park domain.TaxiPark) (period domain.Period, ok bool) {
	counts := make(map[int]int)
	for _, trip := range park.Trips {
		counts[periodStart(trip.Duration)]++
	}

	best, bestCount := 0, 0
	for _, start := range slices.Sorted(maps.Keys(counts)) {
		if counts[start] > bestCount {
			best, bestCount = start, counts[start]
		}
	}
	if bestCount == 0 {
		return domain.Period{}, false
	}

	return domain.Period{Start: best, End: best + periodLength - 1}, true
}

// CheckParetoPrinciple reports whether the top 20% of the park's drivers
// (rounded down) earned at least 80% of the total income. The driver count
// is taken from AllDrivers, not from the drivers seen in trips. A park with
// no trips never satisfies the principle.
func CheckParetoPrinciple(park domain.TaxiPark) bool {
	if len(park.Trips) == 0 {
		return false
	}

	total := 0.0
	byDriver := make(map[domain.Driver]float64)
	for _, trip := range park.Trips {
		total += trip.Cost
		byDriver[trip.Driver] += trip.Cost
	}

	incomes := slices.SortedFunc(maps.Values(byDriver), func(a, b float64) int {
		return cmp.Compare(b, a)
	})

	top := min(len(park.AllDrivers)*paretoDriversPercent/100, len(incomes))
	topIncome := 0.0
	for _, income := range incomes[:top] {
		topIncome += income
	}

	return topIncome >= paretoIncomeShare*total
}

// tripsPerPassenger counts, for every passenger, the trips matching keep.
func tripsPerPassenger(trips []domain.Trip, keep func(domain.Trip) bool) map[domain.Passenger]int {
	counts := make(map[domain.Passenger]int)
	for _, trip := range trips {
		if !keep(trip) {
			continue
		}
		for passenger := range trip.Passengers {
			counts[passenger]++
		}
	}

	return counts
}

// periodStart returns the start of the ten minute period holding duration.
func periodStart(duration int) int {
	return duration / periodLength * periodLength
}
