package middleware

import (
	"context"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "htmlify"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "htmlify").
	TracerName string

	// Filter determines which requests to trace. If nil, all are traced.
	Filter func(r *http.Request) bool

	// AttributeExtractor adds custom attributes per request.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithRequestFilter sets a filter function for requests.
func WithRequestFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(r *http.Request) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that starts a server span per request.
// The span is stored in the request context so handlers can annotate it
// with trace.SpanFromContext. Responses with a 5xx status mark the span
// as failed.
func OpenTelemetry(opts ...OTelOption) func(http.Handler) http.Handler {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			attrs := []attribute.KeyValue{
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			}
			if reqID := chimw.GetReqID(r.Context()); reqID != "" {
				attrs = append(attrs, attribute.String("htmlify.request_id", reqID))
			}
			if config.AttributeExtractor != nil {
				attrs = append(attrs, config.AttributeExtractor(r)...)
			}

			ctx, span := config.tracer.Start(
				r.Context(),
				formatSpanName(r),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			span.SetAttributes(
				attribute.Int("http.status_code", status),
				attribute.Int("htmlify.bytes_written", ww.BytesWritten()),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			} else {
				span.SetStatus(codes.Ok, "")
			}
		})
	}
}

// StartSpan starts a child span for an internal stage such as decoding or
// rendering.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(defaultTracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordError marks span as failed with err.
func RecordError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func formatSpanName(r *http.Request) string {
	path := r.URL.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s %s", r.Method, path)
}
