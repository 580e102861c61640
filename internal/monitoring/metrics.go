package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Conversion metrics
	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfo_parser_conversions_total",
			Help: "Total number of report conversions by tool and outcome",
		},
		[]string{"tool", "status"},
	)

	tableRows = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wfo_parser_table_rows",
			Help:    "Distribution of data-row counts in accepted tables",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
		[]string{"tool"},
	)

	// Error metrics
	parseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wfo_parser_errors_total",
			Help: "Total number of parse errors by kind",
		},
		[]string{"kind"},
	)

	// Download handoff metrics
	pendingDownloads = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "wfo_parser_pending_downloads",
			Help: "Number of generated files awaiting download",
		},
	)
)

func init() {
	prometheus.MustRegister(conversionsTotal)
	prometheus.MustRegister(tableRows)
	prometheus.MustRegister(parseErrorsTotal)
	prometheus.MustRegister(pendingDownloads)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordConversion records a completed or failed conversion
func RecordConversion(tool, status string) {
	conversionsTotal.WithLabelValues(tool, status).Inc()
}

// RecordTableRows records the data-row count of an accepted table
func RecordTableRows(tool string, rows int) {
	tableRows.WithLabelValues(tool).Observe(float64(rows))
}

// RecordParseError records a parse error metric
func RecordParseError(kind string) {
	parseErrorsTotal.WithLabelValues(kind).Inc()
}

// SetPendingDownloads updates the pending download gauge
func SetPendingDownloads(n int) {
	pendingDownloads.Set(float64(n))
}
