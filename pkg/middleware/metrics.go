package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmlify").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "htmlify",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the preview server's Prometheus collectors.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	renderedBytes   prometheus.Counter
	renderErrors    *prometheus.CounterVec
	liveClients     prometheus.Gauge
	liveBroadcasts  prometheus.Counter
}

// NewMetrics registers the collectors on the configured registry. Creating
// two Metrics on the same registry panics, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "method", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		renderedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_bytes_total",
			Help:        "Total bytes of markup rendered",
			ConstLabels: config.ConstLabels,
		}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total render failures by stage",
			ConstLabels: config.ConstLabels,
		}, []string{"stage"}),

		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_clients",
			Help:        "Number of connected live preview clients",
			ConstLabels: config.ConstLabels,
		}),

		liveBroadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_broadcasts_total",
			Help:        "Total document updates pushed to live clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Handler is chi-compatible middleware that counts and times requests.
// The route label is the matched chi pattern so path parameters do not
// explode cardinality.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}

// RecordRender adds n rendered bytes.
func (m *Metrics) RecordRender(n int) {
	if m == nil {
		return
	}
	m.renderedBytes.Add(float64(n))
}

// RecordRenderError counts a failure in stage ("decode", "render", "publish").
func (m *Metrics) RecordRenderError(stage string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(stage).Inc()
}

// ClientConnected increments the live client gauge.
func (m *Metrics) ClientConnected() {
	if m == nil {
		return
	}
	m.liveClients.Inc()
}

// ClientDisconnected decrements the live client gauge.
func (m *Metrics) ClientDisconnected() {
	if m == nil {
		return
	}
	m.liveClients.Dec()
}

// RecordBroadcast counts a document push.
func (m *Metrics) RecordBroadcast() {
	if m == nil {
		return
	}
	m.liveBroadcasts.Inc()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
