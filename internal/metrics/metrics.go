package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ElmaazouziSara/song-stream-daily/pkg/logs"
)

// ChartsMetrics holds the Prometheus counters for the daily chart pipeline.
// A nil *ChartsMetrics is valid and counts nothing, so single-run invocations
// skip registration entirely.
type ChartsMetrics struct {
	DaysTotal          *prometheus.CounterVec
	EventsTotal        prometheus.Counter
	ParseFailuresTotal prometheus.Counter
	SummariesPublished prometheus.Counter
}

// NewChartsMetrics initializes and registers the Prometheus metrics.
func NewChartsMetrics() *ChartsMetrics {
	return &ChartsMetrics{
		DaysTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charts",
			Subsystem: "daily",
			Name:      "days_total",
			Help:      "Days processed by outcome.",
		}, []string{"status"}), // status: ok, date_not_found, empty_batch, load_error, write_error
		EventsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "charts",
			Subsystem: "daily",
			Name:      "events_total",
			Help:      "Total number of valid listen events aggregated.",
		}),
		ParseFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "charts",
			Subsystem: "daily",
			Name:      "parse_failures_total",
			Help:      "Total number of rejected log lines.",
		}),
		SummariesPublished: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "charts",
			Subsystem: "daily",
			Name:      "summaries_published_total",
			Help:      "Total number of chart summaries published to the broker.",
		}),
	}
}

func (m *ChartsMetrics) Day(status string) {
	if m == nil {
		return
	}
	m.DaysTotal.WithLabelValues(status).Inc()
}

func (m *ChartsMetrics) Events(n int) {
	if m == nil {
		return
	}
	m.EventsTotal.Add(float64(n))
}

func (m *ChartsMetrics) ParseFailures(n int) {
	if m == nil {
		return
	}
	m.ParseFailuresTotal.Add(float64(n))
}

func (m *ChartsMetrics) SummaryPublished() {
	if m == nil {
		return
	}
	m.SummariesPublished.Inc()
}

// Serve exposes /metrics on addr in the background. Used by recurring mode;
// a serve failure is logged, not fatal, since the pipeline itself does not
// depend on it.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logs.Logger.Errorf("metrics endpoint on %s stopped: %v", addr, err)
		}
	}()
}
