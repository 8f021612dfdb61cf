package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricImportSucceeded   = "import.succeeded"
	MetricImportFailed      = "import.failed"
	MetricImportDuration    = "import.duration"
	MetricImportedRows      = "import.rows"
	MetricStoredRows        = "store.rows"
	MetricQueryExecuted     = "query.executed"
	MetricQueryNoMatchFound = "query.no_match"
)

type PrometheusMetrics struct {
	importsTotal      *prometheus.CounterVec
	importDuration    prometheus.Histogram
	importedRows      prometheus.Counter
	storedRows        prometheus.Gauge
	queriesTotal      *prometheus.CounterVec
	queryDuration     *prometheus.HistogramVec
	queryNoMatchTotal *prometheus.CounterVec
}

// NewPrometheusMetrics registers the service metrics with reg.
// A nil registerer uses the default Prometheus registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		importsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_imports_total",
				Help: "Total number of statement imports",
			},
			[]string{"status", "reason"},
		),
		importDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_import_duration_milliseconds",
				Help:    "Statement import duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		importedRows: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transactions_imported_total",
				Help: "Total number of transactions imported",
			},
		),
		storedRows: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transactions_stored",
				Help: "Number of transactions in the current working set",
			},
		),
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_queries_total",
				Help: "Total number of transaction queries",
			},
			[]string{"query"},
		),
		queryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transaction_query_duration_seconds",
				Help:    "Transaction query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"query"},
		),
		queryNoMatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_query_no_match_total",
				Help: "Total number of queries that matched no transaction",
			},
			[]string{"query"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricImportSucceeded:
		m.importsTotal.WithLabelValues("success", "").Inc()
	case MetricImportFailed:
		m.importsTotal.WithLabelValues("failed", tags["reason"]).Inc()
	case MetricQueryExecuted:
		if query := tags["query"]; query != "" {
			m.queriesTotal.WithLabelValues(query).Inc()
		}
	case MetricQueryNoMatchFound:
		if query := tags["query"]; query != "" {
			m.queryNoMatchTotal.WithLabelValues(query).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricImportDuration:
		m.importDuration.Observe(float64(duration.Milliseconds()))
	default:
		m.queryDuration.WithLabelValues(name).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricImportedRows:
		m.importedRows.Add(value)
	case MetricStoredRows:
		m.storedRows.Set(value)
	}
}
