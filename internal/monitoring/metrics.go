package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for a tour run
type Metrics struct {
	registry *prometheus.Registry

	// Demonstration metrics
	DemoRuns     *prometheus.CounterVec
	DemoDuration *prometheus.HistogramVec
	DemoErrors   *prometheus.CounterVec

	// Run metrics
	ToursTotal prometheus.Counter
	Uptime     prometheus.Gauge

	startTime time.Time
}

// NewMetrics creates a metrics collector backed by its own registry, so
// multiple runs (and tests) never collide on registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry:  reg,
		startTime: time.Now(),

		DemoRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_demo_runs_total",
			Help: "Total demonstration executions",
		}, []string{"demo", "status"}),

		DemoDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tour_demo_duration_seconds",
			Help:    "Demonstration execution duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"demo"}),

		DemoErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tour_demo_errors_total",
			Help: "Demonstration executions that failed",
		}, []string{"demo"}),

		ToursTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "tour_runs_total",
			Help: "Completed tour runs",
		}),

		Uptime: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tour_uptime_seconds",
			Help: "Seconds since the collector was created",
		}),
	}
}

// RecordDemo records one demonstration execution.
func (m *Metrics) RecordDemo(demo string, duration time.Duration, failed bool) {
	status := "ok"
	if failed {
		status = "error"
		m.DemoErrors.WithLabelValues(demo).Inc()
	}
	m.DemoRuns.WithLabelValues(demo, status).Inc()
	m.DemoDuration.WithLabelValues(demo).Observe(duration.Seconds())
}

// RecordTour marks a completed tour run.
func (m *Metrics) RecordTour() {
	m.ToursTotal.Inc()
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// Summary gathers current counts for the end-of-run report.
func (m *Metrics) Summary() map[string]interface{} {
	var demos, errors int
	families, err := m.registry.Gather()
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	for _, fam := range families {
		switch fam.GetName() {
		case "tour_demo_runs_total":
			for _, metric := range fam.GetMetric() {
				demos += int(metric.GetCounter().GetValue())
			}
		case "tour_demo_errors_total":
			for _, metric := range fam.GetMetric() {
				errors += int(metric.GetCounter().GetValue())
			}
		}
	}

	return map[string]interface{}{
		"demos_executed": demos,
		"demo_errors":    errors,
		"uptime":         time.Since(m.startTime).String(),
	}
}
