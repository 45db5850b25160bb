package parkfile

import (
	"io"
	"taxipark/pkg/domain"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

type yamlFixture struct {
	Name       string     `yaml:"name"`
	Drivers    []string   `yaml:"drivers"`
	Passengers []string   `yaml:"passengers"`
	Trips      []yamlTrip `yaml:"trips"`
}

type yamlTrip struct {
	Driver     *string  `yaml:"driver"`
	Passengers []string `yaml:"passengers"`
	Duration   int      `yaml:"duration"`
	Cost       float64  `yaml:"cost"`
	Discount   *float64 `yaml:"discount"`
}

// DecodeYAML reads a YAML fixture from r. Unlike DecodeJSON, unknown keys
// are rejected so that typos in hand-written fixtures surface early.
func DecodeYAML(r io.Reader) (Fixture, error) {
	var raw yamlFixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, errors.Wrap(err, "decode yaml fixture")
	}

	fixture := Fixture{Name: raw.Name, Park: newPark()}
	for _, d := range raw.Drivers {
		fixture.Park.AllDrivers.Add(domain.Driver(d))
	}
	for _, p := range raw.Passengers {
		fixture.Park.AllPassengers.Add(domain.Passenger(p))
	}
	for i, t := range raw.Trips {
		if t.Driver == nil {
			return Fixture{}, errors.Errorf("decode yaml fixture: trip %d: driver is required", i)
		}

		trip := domain.Trip{
			Driver:     domain.Driver(*t.Driver),
			Passengers: domain.NewSet[domain.Passenger](),
			Duration:   t.Duration,
			Cost:       t.Cost,
			Discount:   t.Discount,
		}
		for _, p := range t.Passengers {
			trip.Passengers.Add(domain.Passenger(p))
		}
		fixture.Park.Trips = append(fixture.Park.Trips, trip)
	}

	return fixture, nil
}
