// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Engine metrics
	SimulationsRun       prometheus.Counter
	BatchesRun           prometheus.Counter
	TradesSimulated      prometheus.Counter
	StreakTablesComputed prometheus.Counter
	SimulationDuration   prometheus.Histogram
	BatchDuration        prometheus.Histogram

	// Reporting metrics
	ReportsGenerated prometheus.Counter

	// HTTP metrics
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "trade_expectancy"
	}

	return &Metrics{
		SimulationsRun: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "simulations_run_total",
			Help:      "Total number of single simulations executed",
		}),
		BatchesRun: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "batches_run_total",
			Help:      "Total number of batch simulations executed",
		}),
		TradesSimulated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "trades_simulated_total",
			Help:      "Total number of trades simulated",
		}),
		StreakTablesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "streak_tables_computed_total",
			Help:      "Total number of losing-streak tables computed",
		}),
		SimulationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "simulation_duration_seconds",
			Help:      "Single simulation execution duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		BatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "batch_duration_seconds",
			Help:      "Batch simulation execution duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reporting",
			Name:      "reports_generated_total",
			Help:      "Total number of reports written",
		}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordSimulation records one finished simulation and its trade count.
func RecordSimulation(trades int, seconds float64) {
	DefaultMetrics.SimulationsRun.Inc()
	DefaultMetrics.TradesSimulated.Add(float64(trades))
	DefaultMetrics.SimulationDuration.Observe(seconds)
}

// RecordBatch records one finished batch and its total trade count.
func RecordBatch(runs, tradesPerRun int, seconds float64) {
	DefaultMetrics.BatchesRun.Inc()
	DefaultMetrics.TradesSimulated.Add(float64(runs * tradesPerRun))
	DefaultMetrics.BatchDuration.Observe(seconds)
}

// RecordStreakTable increments the streak tables computed counter.
func RecordStreakTable() {
	DefaultMetrics.StreakTablesComputed.Inc()
}

// RecordReport increments the reports generated counter.
func RecordReport() {
	DefaultMetrics.ReportsGenerated.Inc()
}

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(route, method, status string, seconds float64) {
	DefaultMetrics.HTTPRequestDuration.WithLabelValues(route, method, status).Observe(seconds)
}
