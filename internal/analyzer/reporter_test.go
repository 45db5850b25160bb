package analyzer_test

import (
	"context"
	"testing"

	"taxipark/internal/analyzer"
	"taxipark/pkg/domain"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var allQueries = []string{
	analyzer.QueryFakeDrivers,
	analyzer.QueryFaithfulPassengers,
	analyzer.QueryFrequentPassengers,
	analyzer.QuerySmartPassengers,
	analyzer.QueryFrequentPeriod,
	analyzer.QueryPareto,
}

func TestReporter_Build_RecordsSpansAndDurations(t *testing.T) {
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	reporter, err := analyzer.NewReporter(mp, tp)
	require.NoError(t, err)

	reporter.Build(ctx, domain.ParkID{}, testPark(), 1)

	ended := spans.Ended()
	require.Len(t, ended, len(allQueries)+1)

	var root sdktrace.ReadOnlySpan
	names := make([]string, 0, len(allQueries))
	for _, span := range ended {
		if span.Name() == "build_report" {
			root = span

			continue
		}
		names = append(names, span.Name())
	}
	require.ElementsMatch(t, allQueries, names)
	require.NotNil(t, root)
	require.Contains(t, root.Attributes(), attribute.Int("park.trips", 3))
	for _, span := range ended {
		if span != root {
			require.Equal(t, root.SpanContext().SpanID(), span.Parent().SpanID())
		}
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	require.Equal(t, "taxipark.query.duration", m.Name)
	require.Equal(t, "s", m.Unit)

	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, len(allQueries))

	recorded := make([]string, 0, len(hist.DataPoints))
	for _, dp := range hist.DataPoints {
		require.Equal(t, uint64(1), dp.Count)
		q, ok := dp.Attributes.Value("query")
		require.True(t, ok)
		recorded = append(recorded, q.AsString())
	}
	require.ElementsMatch(t, allQueries, recorded)
}

func TestReporter_Build_EmptyPark(t *testing.T) {
	reporter, err := analyzer.NewReporter(sdkmetric.NewMeterProvider(), sdktrace.NewTracerProvider())
	require.NoError(t, err)

	report := reporter.Build(context.Background(), domain.ParkID{}, domain.TaxiPark{}, 0)

	require.Empty(t, report.FakeDrivers)
	require.NotNil(t, report.FakeDrivers)
	require.Empty(t, report.FaithfulPassengers)
	require.Empty(t, report.FrequentPassengers)
	require.NotNil(t, report.FrequentPassengers)
	require.Empty(t, report.SmartPassengers)
	require.Nil(t, report.MostFrequentPeriod)
	require.False(t, report.ParetoPrinciple)
}
