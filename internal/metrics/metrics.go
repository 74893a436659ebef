// Package metrics provides Prometheus metrics collection for the rent cost API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rentcost"

// Calculation outcomes
const (
	OutcomeOK              = "ok"
	OutcomeInvalidUnit     = "invalid_unit"
	OutcomeInvalidDuration = "invalid_duration"
	OutcomeInvalidInput    = "invalid_input"
)

// Collector holds all Prometheus metrics for the service
type Collector struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Calculation metrics
	CalculationsTotal *prometheus.CounterVec
	ListingsCompared  prometheus.Counter
	EffectiveMonthly  prometheus.Histogram
	MonthlyPremium    prometheus.Histogram
}

// New creates a collector on its own registry, including Go runtime and
// process collectors.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry creates a collector registered on reg.
// Useful for testing to avoid global state.
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),

		CalculationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Total number of listing calculations by outcome",
			},
			[]string{"outcome"},
		),
		ListingsCompared: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "listings_compared_total",
				Help:      "Total number of listings submitted for comparison",
			},
		),
		EffectiveMonthly: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "effective_monthly_cost_yen",
				Help:      "Effective monthly cost of successful calculations",
				Buckets:   prometheus.ExponentialBuckets(20000, 1.5, 10),
			},
		),
		MonthlyPremium: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "monthly_premium_yen",
				Help:      "Effective monthly cost above rent plus management fee",
				Buckets:   []float64{0, 1000, 2500, 5000, 10000, 20000, 40000},
			},
		),
	}
}

// Registry returns the registry the collector is registered on
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveCalculation records one listing outcome. effective and premium are
// ignored unless outcome is OutcomeOK.
func (c *Collector) ObserveCalculation(outcome string, effective, premium int64) {
	c.CalculationsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	c.EffectiveMonthly.Observe(float64(effective))
	c.MonthlyPremium.Observe(float64(premium))
}
