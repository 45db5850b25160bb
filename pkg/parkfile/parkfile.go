// Package parkfile reads taxi park fixtures from JSON or YAML documents.
//
// A fixture looks like:
//
//	{
//	  "name": "downtown",
//	  "drivers": ["D-0", "D-1"],
//	  "passengers": ["P-0", "P-1"],
//	  "trips": [
//	    {"driver": "D-0", "passengers": ["P-0"], "duration": 12, "cost": 10.5, "discount": 0.1}
//	  ]
//	}
//
// A missing or null "discount" means the trip had no discount. Duplicate
// drivers or passengers collapse into one. Trips may reference drivers and
// passengers that are not listed at the top level.
package parkfile

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"taxipark/pkg/domain"

	"github.com/go-faster/errors"
)

// Format is the encoding of a fixture document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions other than .json, .yaml
// and .yml.
var ErrUnknownFormat = errors.New("unknown fixture format")

// Fixture is a decoded fixture document.
type Fixture struct {
	// Name is an optional human-readable label for the park.
	Name string
	Park domain.TaxiPark
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "extension of %q", path)
	}
}

// Decode reads one fixture document in the given format from r.
func Decode(r io.Reader, format Format) (Fixture, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return Fixture{}, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

// ReadFile decodes the fixture stored at path.
func ReadFile(path string) (Fixture, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Fixture{}, err
	}

	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		return Fixture{}, errors.Wrap(err, "open fixture")
	}
	defer func() {
		_ = f.Close()
	}()

	fixture, err := Decode(f, format)
	if err != nil {
		return Fixture{}, errors.Wrapf(err, "decode %s", path)
	}

	return fixture, nil
}

func newPark() domain.TaxiPark {
	return domain.TaxiPark{
		AllDrivers:    domain.NewSet[domain.Driver](),
		AllPassengers: domain.NewSet[domain.Passenger](),
		Trips:         []domain.Trip{},
	}
}
