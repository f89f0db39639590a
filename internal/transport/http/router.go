// Package httptransport wires the HTTP surface. It is a thin layer: request
// decoding and status mapping live in the handlers, everything else in the
// person services.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	personhandler "kinship/internal/person/handler"
	"kinship/internal/platform/metrics"
	"kinship/internal/platform/middleware"
)

// NewRouter assembles the full router: middleware chain, people API, liveness,
// and the prometheus scrape endpoint.
func NewRouter(persons *personhandler.Handler, logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(m))

	persons.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
