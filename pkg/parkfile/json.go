package parkfile

import (
	"io"
	"taxipark/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const readBufferSize = 4096

// DecodeJSON reads a JSON fixture from r. Unknown keys are skipped.
func DecodeJSON(r io.Reader) (Fixture, error) {
	fixture := Fixture{Park: newPark()}

	d := jx.Decode(r, readBufferSize)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "name":
			fixture.Name, err = d.Str()
		case "drivers":
			err = decodeStrings(d, func(s string) {
				fixture.Park.AllDrivers.Add(domain.Driver(s))
			})
		case "passengers":
			err = decodeStrings(d, func(s string) {
				fixture.Park.AllPassengers.Add(domain.Passenger(s))
			})
		case "trips":
			err = d.Arr(func(d *jx.Decoder) error {
				trip, err := decodeTrip(d)
				if err != nil {
					return errors.Wrapf(err, "trip %d", len(fixture.Park.Trips))
				}
				fixture.Park.Trips = append(fixture.Park.Trips, trip)

				return nil
			})
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}

		return nil
	}); err != nil {
		return Fixture{}, errors.Wrap(err, "decode json fixture")
	}

	return fixture, nil
}

func decodeTrip(d *jx.Decoder) (domain.Trip, error) {
	trip := domain.Trip{Passengers: domain.NewSet[domain.Passenger]()}
	hasDriver := false

	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "driver":
			var s string
			s, err = d.Str()
			trip.Driver = domain.Driver(s)
			hasDriver = true
		case "passengers":
			err = decodeStrings(d, func(s string) {
				trip.Passengers.Add(domain.Passenger(s))
			})
		case "duration":
			trip.Duration, err = d.Int()
		case "cost":
			trip.Cost, err = d.Float64()
		case "discount":
			if d.Next() == jx.Null {
				return d.Null()
			}
			var discount float64
			discount, err = d.Float64()
			trip.Discount = &discount
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrap(err, string(key))
		}

		return nil
	}); err != nil {
		return domain.Trip{}, err
	}
	if !hasDriver {
		return domain.Trip{}, errors.New("driver is required")
	}

	return trip, nil
}

func decodeStrings(d *jx.Decoder, add func(string)) error {
	return d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		add(s)

		return nil
	})
}
