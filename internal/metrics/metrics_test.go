package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMiddleware_RecordsStatusCode(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	handler := collector.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	body := scrape(t, registry)
	if !strings.Contains(body, `calnote_http_requests_total{status_code="404"} 1`) {
		t.Fatalf("404 not recorded:\n%s", body)
	}
}

func TestMiddleware_DefaultsTo200(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	handler := collector.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	body := scrape(t, registry)
	if !strings.Contains(body, `calnote_http_requests_total{status_code="200"} 1`) {
		t.Fatalf("implicit 200 not recorded:\n%s", body)
	}
}

func TestRecordNoteCreated(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	collector.RecordNoteCreated()
	collector.RecordNoteCreated()

	body := scrape(t, registry)
	if !strings.Contains(body, "calnote_notes_created_total 2") {
		t.Fatalf("note counter not incremented:\n%s", body)
	}
}

func TestRecordRequest_ObservesLatency(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	collector := NewCollector(registry)

	collector.RecordRequest(http.StatusOK, 25*time.Millisecond)

	body := scrape(t, registry)
	if !strings.Contains(body, "calnote_http_request_duration_seconds_count 1") {
		t.Fatalf("latency not observed:\n%s", body)
	}
}

func scrape(t *testing.T, registry *prometheus.Registry) string {
	t.Helper()

	rec := httptest.NewRecorder()
	Handler(registry).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status %d", rec.Code)
	}
	return rec.Body.String()
}
