package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the Prometheus collectors of the advisor
// Each Registry owns its prometheus.Registry so tests do not collide on the default one
type Registry struct {
	registry *prometheus.Registry

	Recommendations    *prometheus.CounterVec
	Projections        *prometheus.CounterVec
	ProjectionDuration *prometheus.HistogramVec
	ProjectionErrors   *prometheus.CounterVec
	RPCRequests        *prometheus.CounterVec
	RPCDuration        *prometheus.HistogramVec
}

// NewRegistry creates a Registry with all advisor metrics registered
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		Recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_recommendations_total",
				Help: "Number of allocation recommendations by profile and risk tier",
			},
			[]string{"profile", "risk"},
		),

		Projections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_projections_total",
				Help: "Number of projections computed by scenario",
			},
			[]string{"scenario"},
		),

		ProjectionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_projection_duration_seconds",
				Help:    "Time spent simulating a projection",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
			},
			[]string{"scenario"},
		),

		ProjectionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_projection_errors_total",
				Help: "Number of failed projections by scenario",
			},
			[]string{"scenario"},
		),

		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advisor_rpc_requests_total",
				Help: "Number of RPC and HTTP requests by method and result code",
			},
			[]string{"method", "code"},
		),

		RPCDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "advisor_rpc_duration_seconds",
				Help:    "Request latency by method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	r.registry.MustRegister(
		r.Recommendations,
		r.Projections,
		r.ProjectionDuration,
		r.ProjectionErrors,
		r.RPCRequests,
		r.RPCDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns the HTTP handler serving the /metrics endpoint
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordRecommendation counts one recommendation
func (r *Registry) RecordRecommendation(profile, risk string) {
	r.Recommendations.WithLabelValues(profile, risk).Inc()
}

// RecordProjection counts one projection and observes its duration
func (r *Registry) RecordProjection(scenario string, elapsed time.Duration, err error) {
	if err != nil {
		r.ProjectionErrors.WithLabelValues(scenario).Inc()
		return
	}
	r.Projections.WithLabelValues(scenario).Inc()
	r.ProjectionDuration.WithLabelValues(scenario).Observe(elapsed.Seconds())
}

// RecordRequest counts one transport request
func (r *Registry) RecordRequest(method, code string, elapsed time.Duration) {
	r.RPCRequests.WithLabelValues(method, code).Inc()
	r.RPCDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
