package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/x", "200", time.Millisecond)
	m.ObserveIngest("ok", 1, 1, time.Second)
	m.IncIngestSkipped("invalid_id")
	m.ObserveCatalog("get_video", "ok", time.Millisecond)
	m.IncCatalogCache("l1", "hit")
	if m.Registry() != nil {
		t.Fatalf("nil metrics should have nil registry")
	}
}

func TestMetricsIngestCounters(t *testing.T) {
	m := New()
	m.ObserveIngest("ok", 3, 1, 2*time.Second)
	m.IncIngestSkipped("duplicate_in_project")
	m.IncIngestSkipped("duplicate_in_project")

	if got := testutil.ToFloat64(m.ingestCommitted); got != 3 {
		t.Fatalf("committed: got %v want 3", got)
	}
	if got := testutil.ToFloat64(m.ingestSkipped.WithLabelValues("duplicate_in_project")); got != 2 {
		t.Fatalf("skipped: got %v want 2", got)
	}
	if got := testutil.ToFloat64(m.channelsCreated); got != 1 {
		t.Fatalf("channels: got %v want 1", got)
	}
}

func TestMetricsHandlerExposesSeries(t *testing.T) {
	m := New()
	m.ObserveAPI("GET", "/api/projects", "200", 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("status: got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "vs_api_requests_total") {
		t.Fatalf("body missing vs_api_requests_total")
	}
}
