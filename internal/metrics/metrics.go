// Package metrics exposes Prometheus instrumentation for landed-cost calculations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the calculation collectors.
type Metrics struct {
	CalculationsTotal   *prometheus.CounterVec
	CalculationErrors   *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
	DutyFallbacksTotal  prometheus.Counter
	LandedCost          *prometheus.HistogramVec
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CalculationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landedcost_calculations_total",
				Help: "Total number of successful calculations per country",
			},
			[]string{"country"},
		),
		CalculationErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "landedcost_calculation_errors_total",
				Help: "Total number of rejected calculations per country and reason",
			},
			[]string{"country", "reason"},
		),
		CalculationDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landedcost_calculation_duration_seconds",
				Help:    "Calculation duration in seconds per country",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"country"},
		),
		DutyFallbacksTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "landedcost_zm_duty_fallbacks_total",
				Help: "Total number of Zambian calculations that used the CIF duty fallback",
			},
		),
		LandedCost: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "landedcost_landed_cost",
				Help:    "Distribution of landed cost in destination currency per country",
				Buckets: prometheus.ExponentialBuckets(10_000, 2, 10),
			},
			[]string{"country"},
		),
	}
}

// ObserveSuccess records a completed calculation.
func (m *Metrics) ObserveSuccess(country string, elapsed time.Duration, landedCost float64, dutyFallback bool) {
	if m == nil {
		return
	}
	m.CalculationsTotal.WithLabelValues(country).Inc()
	m.CalculationDuration.WithLabelValues(country).Observe(elapsed.Seconds())
	m.LandedCost.WithLabelValues(country).Observe(landedCost)
	if dutyFallback {
		m.DutyFallbacksTotal.Inc()
	}
}

// ObserveError records a rejected calculation. country must come from a
// fixed set; callers map unknown codes to a single label.
func (m *Metrics) ObserveError(country, reason string) {
	if m == nil {
		return
	}
	m.CalculationErrors.WithLabelValues(country, reason).Inc()
}
