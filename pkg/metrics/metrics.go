// Package metrics holds the shared metric plumbing: histogram buckets, the
// OpenTelemetry meter provider exported through Prometheus, and the plain
// Prometheus collectors used by the HTTP API.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets are histogram buckets in seconds. Park queries are in-memory
// scans, so the lower end is finer than a typical request latency histogram.
var DefaultBuckets = []float64{.00001, .0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NiceVerdicts counts classified strings by verdict ("nice" or "naughty").
type NiceVerdicts struct {
	counter *prometheus.CounterVec
}

// NewNiceVerdicts creates the counter and registers it with reg.
func NewNiceVerdicts(reg prometheus.Registerer) (*NiceVerdicts, error) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "taxipark",
		Name:      "nice_string_verdicts_total",
		Help:      "Number of strings classified, by verdict.",
	}, []string{"verdict"})
	if err := reg.Register(counter); err != nil {
		return nil, fmt.Errorf("could not register nice verdict counter: %w", err)
	}

	return &NiceVerdicts{counter: counter}, nil
}

// Observe records one classified string.
func (n *NiceVerdicts) Observe(nice bool) {
	verdict := "naughty"
	if nice {
		verdict = "nice"
	}
	n.counter.WithLabelValues(verdict).Inc()
}

// HTTPRequests is a latency histogram of API requests labelled by route
// pattern, so path parameters such as park ids do not explode cardinality.
type HTTPRequests struct {
	duration *prometheus.HistogramVec
}

// NewHTTPRequests creates the histogram and registers it with reg.
func NewHTTPRequests(reg prometheus.Registerer) (*HTTPRequests, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "taxipark",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests, by route, method and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
	if err := reg.Register(duration); err != nil {
		return nil, fmt.Errorf("could not register http request histogram: %w", err)
	}

	return &HTTPRequests{duration: duration}, nil
}

// Observe records one served request.
func (h *HTTPRequests) Observe(route, method string, code int, d time.Duration) {
	h.duration.WithLabelValues(route, method, strconv.Itoa(code)).Observe(d.Seconds())
}
