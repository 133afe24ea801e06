// Package middleware provides net/http middleware for the htmlify preview
// server.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus request metrics
//   - Structured request logging with log/slog
//
// # OpenTelemetry Middleware
//
// Every request gets a server span named after its method and path:
//
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("htmlify"),
//	    middleware.WithRequestFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer comes from the global provider configured with
// otel.SetTracerProvider.
//
// # Prometheus Metrics
//
// Metrics are registered on the configured registry:
//   - htmlify_requests_total: requests by route, method and status
//   - htmlify_request_duration_seconds: request duration histogram
//   - htmlify_rendered_bytes_total: markup bytes written by render handlers
//   - htmlify_live_clients: connected live preview clients
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware
