package analyzer

import (
	"context"
	"fmt"
	"taxipark/pkg/domain"
	"taxipark/pkg/metrics"
	"taxipark/pkg/taxipark"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "taxipark/internal/analyzer"

// Query names used as span names and as the "query" metric attribute.
const (
	QueryFakeDrivers        = "find_fake_drivers"
	QueryFaithfulPassengers = "find_faithful_passengers"
	QueryFrequentPassengers = "find_frequent_passengers"
	QuerySmartPassengers    = "find_smart_passengers"
	QueryFrequentPeriod     = "find_most_frequent_trip_duration_period"
	QueryPareto             = "check_pareto_principle"
)

// Reporter runs every park query and assembles a domain.ParkReport. Each
// query gets its own span and a sample in the query duration histogram.
// A Reporter is safe for concurrent use.
type Reporter struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
	now      func() time.Time
}

// NewReporter creates a Reporter instrumented through the given providers.
func NewReporter(mp metric.MeterProvider, tp trace.TracerProvider) (*Reporter, error) {
	duration, err := mp.Meter(instrumentationName).Float64Histogram(
		"taxipark.query.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a single taxi park query."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create query duration histogram: %w", err)
	}

	return &Reporter{
		tracer:   tp.Tracer(instrumentationName),
		duration: duration,
		now:      time.Now,
	}, nil
}

// Build runs the queries against park. Frequent passengers are computed for
// every driver of the park, including those without trips.
func (r *Reporter) Build(ctx context.Context,
	parkID domain.ParkID,
	park domain.TaxiPark,
	faithfulMinTrips int) domain.ParkReport {
	ctx, span := r.tracer.Start(ctx, "build_report", trace.WithAttributes(
		attribute.String("park.id", parkID.String()),
		attribute.Int("park.drivers", park.AllDrivers.Len()),
		attribute.Int("park.passengers", park.AllPassengers.Len()),
		attribute.Int("park.trips", len(park.Trips)),
	))
	defer span.End()

	report := domain.ParkReport{
		ParkID:           parkID,
		FaithfulMinTrips: faithfulMinTrips,
		CreatedAt:        r.now().UTC(),
	}

	r.observe(ctx, QueryFakeDrivers, func() {
		report.FakeDrivers = domain.Sorted(taxipark.FindFakeDrivers(park))
	})
	r.observe(ctx, QueryFaithfulPassengers, func() {
		report.FaithfulPassengers = domain.Sorted(taxipark.FindFaithfulPassengers(park, faithfulMinTrips))
	})
	r.observe(ctx, QueryFrequentPassengers, func() {
		report.FrequentPassengers = make(map[domain.Driver][]domain.Passenger, park.AllDrivers.Len())
		for driver := range park.AllDrivers {
			report.FrequentPassengers[driver] = domain.Sorted(taxipark.FindFrequentPassengers(park, driver))
		}
	})
	r.observe(ctx, QuerySmartPassengers, func() {
		report.SmartPassengers = domain.Sorted(taxipark.FindSmartPassengers(park))
	})
	r.observe(ctx, QueryFrequentPeriod, func() {
		if period, ok := taxipark.FindTheMostFrequentTripDurationPeriod(park); ok {
			report.MostFrequentPeriod = &period
		}
	})
	r.observe(ctx, QueryPareto, func() {
		report.ParetoPrinciple = taxipark.CheckParetoPrinciple(park)
	})

	return report
}

func (r *Reporter) observe(ctx context.Context, query string, fn func()) {
	ctx, span := r.tracer.Start(ctx, query)
	defer span.End()

	start := time.Now()
	fn()
	r.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attribute.String("query", query)))
}
