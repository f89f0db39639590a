package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	PersonsUpserted prometheus.Counter
	PersonsDeleted  prometheus.Counter
	MatchScans      prometheus.Counter
	MatchesFound    prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics against reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh registry so
// packages can construct metrics repeatedly.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PersonsUpserted: factory.NewCounter(prometheus.CounterOpts{
			Name: "kinship_persons_upserted_total",
			Help: "Total number of person records stored via upsert",
		}),
		PersonsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "kinship_persons_deleted_total",
			Help: "Total number of person ids tombstoned",
		}),
		MatchScans: factory.NewCounter(prometheus.CounterOpts{
			Name: "kinship_match_scans_total",
			Help: "Total number of full pattern-match scans",
		}),
		MatchesFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "kinship_matches_found_total",
			Help: "Total number of persons returned as pattern matches",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kinship_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(route, status string, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(route, status).Observe(elapsed.Seconds())
}
