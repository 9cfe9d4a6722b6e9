package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the walkthrough API with Prometheus collectors on a
// private registry.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates and registers the API collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "waymark",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Requests served, by path pattern and status code.",
		}, []string{"path", "code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "waymark",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Request handling latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.requests, m.duration)
	return m
}

// Registry exposes the private registry for the /metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records count and latency per request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		m.duration.Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}
