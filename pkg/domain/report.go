package domain

import "time"

// ParkReport holds the outcome of every taxi park query for one park.
type ParkReport struct {
	// ParkID is the park the report was built for. It is the zero value for
	// reports built from a park that was never stored.
	ParkID ParkID `json:"parkId"`

	// FakeDrivers are the drivers that performed no trips.
	FakeDrivers []Driver `json:"fakeDrivers"`
	// FaithfulMinTrips is the threshold FaithfulPassengers was computed with.
	FaithfulMinTrips int `json:"faithfulMinTrips"`
	// FaithfulPassengers completed at least FaithfulMinTrips trips.
	FaithfulPassengers []Passenger `json:"faithfulPassengers"`
	// FrequentPassengers maps every known driver to the passengers they drove
	// more than once. Drivers without such passengers map to an empty list.
	FrequentPassengers map[Driver][]Passenger `json:"frequentPassengers"`
	// SmartPassengers had a discount on the majority of their trips.
	SmartPassengers []Passenger `json:"smartPassengers"`
	// MostFrequentPeriod is nil when the park has no trips.
	MostFrequentPeriod *Period `json:"mostFrequentPeriod"`
	// ParetoPrinciple reports whether 20% of drivers earn 80% of the income.
	ParetoPrinciple bool `json:"paretoPrinciple"`

	// CreatedAt is when the report was built.
	CreatedAt time.Time `json:"createdAt"`
}
