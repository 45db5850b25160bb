package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Driver is an opaque driver identity.
type Driver string

// Passenger is an opaque passenger identity.
type Passenger string

// ParkID uniquely identifies a stored taxi park.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ParkID uuid.UUID

// String returns the canonical textual form of the id.
func (id ParkID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText encodes the id in its canonical textual form.
func (id ParkID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText decodes an id produced by MarshalText.
func (id *ParkID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// ParseParkID parses the textual form produced by ParkID.String.
func ParseParkID(s string) (ParkID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ParkID{}, fmt.Errorf("could not parse park id: %w", err)
	}

	return ParkID(id), nil
}

// Trip is a single ride performed by one driver.
type Trip struct {
	// Driver performed the trip. It does not have to be listed in
	// TaxiPark.AllDrivers.
	Driver Driver
	// Passengers who took part in the trip. No duplicates.
	Passengers Set[Passenger]
	// Duration in minutes.
	Duration int
	// Cost of the trip.
	Cost float64
	// Discount is nil when no discount was applied. A non-nil zero still
	// counts as a discounted trip.
	Discount *float64
}

// HasDiscount reports whether a discount value was recorded for the trip.
func (t Trip) HasDiscount() bool {
	return t.Discount != nil
}

// TaxiPark is the read-only dataset queried by the taxipark package.
// Trips may reference drivers and passengers missing from AllDrivers and
// AllPassengers.
type TaxiPark struct {
	AllDrivers    Set[Driver]
	AllPassengers Set[Passenger]
	Trips         []Trip
}

// Period is an inclusive range of trip durations in minutes.
type Period struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether duration falls within the period.
func (p Period) Contains(duration int) bool {
	return duration >= p.Start && duration <= p.End
}

// String renders the period as "start..end".
func (p Period) String() string {
	return fmt.Sprintf("%d..%d", p.Start, p.End)
}
