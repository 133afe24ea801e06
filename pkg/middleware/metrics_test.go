package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsHandler_RecordsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/items/1", "/items/2", "/ok"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/items/{id}", "GET", "418")); got != 2 {
		t.Errorf("items requests = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/ok", "GET", "200")); got != 1 {
		t.Errorf("ok requests = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.requestDuration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestMetrics_Recorders(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))

	m.RecordRender(10)
	m.RecordRender(5)
	m.RecordRenderError("decode")
	m.ClientConnected()
	m.ClientConnected()
	m.ClientDisconnected()
	m.RecordBroadcast()

	if got := testutil.ToFloat64(m.renderedBytes); got != 15 {
		t.Errorf("rendered bytes = %v, want 15", got)
	}
	if got := testutil.ToFloat64(m.renderErrors.WithLabelValues("decode")); got != 1 {
		t.Errorf("decode errors = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.liveClients); got != 1 {
		t.Errorf("live clients = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.liveBroadcasts); got != 1 {
		t.Errorf("broadcasts = %v, want 1", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRender(1)
	m.RecordRenderError("render")
	m.ClientConnected()
	m.ClientDisconnected()
	m.RecordBroadcast()
}

func TestRoutePattern_Unmatched(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := routePattern(req); got != "unmatched" {
		t.Errorf("got %q, want %q", got, "unmatched")
	}
}
