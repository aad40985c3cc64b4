package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for one server instance.
// Each server owns its registry so tests can build servers in parallel.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	apiCallsTotal   *prometheus.CounterVec
	projectsListed  prometheus.Gauge

	StartTime time.Time
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackr_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trackr_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		apiCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackr_api_calls_total",
				Help: "Total number of project API calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		projectsListed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trackr_projects_listed",
				Help: "Number of projects returned by the last successful list",
			},
		),
		StartTime: time.Now(),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.apiCallsTotal,
		m.projectsListed,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveAPICall counts one API call. outcome is "ok" or the error class.
func (m *Metrics) ObserveAPICall(operation, outcome string) {
	m.apiCallsTotal.WithLabelValues(operation, outcome).Inc()
}

// SetProjectsListed records the size of the last successful list
func (m *Metrics) SetProjectsListed(n int) {
	m.projectsListed.Set(float64(n))
}

// Uptime returns the time since the metrics were created
func (m *Metrics) Uptime() time.Duration {
	return time.Since(m.StartTime)
}

// Handler returns the /metrics handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency by matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
