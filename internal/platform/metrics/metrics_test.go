package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_RecordUpstream(t *testing.T) {
	t.Parallel()

	r := New()
	r.RecordUpstream("news", StagePrimary, "error", 120*time.Millisecond)
	r.RecordUpstream("news", StageFallback, "ok", 80*time.Millisecond)

	if got := testutil.ToFloat64(r.UpstreamRequests.WithLabelValues("news", StageFallback, "ok")); got != 1 {
		t.Fatalf("expected one fallback success, got %v", got)
	}
	if got := testutil.CollectAndCount(r.UpstreamLatency); got != 2 {
		t.Fatalf("expected two latency series, got %d", got)
	}
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()

	r := New()
	r.RecordNormalized("standings", 10)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `scorefeed_records_normalized_total{family="standings"} 10`) {
		t.Fatalf("expected normalized counter in output")
	}
}

func TestRecorder_NilIsNoop(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.RecordUpstream("odds", StagePrimary, "ok", time.Second)
	r.RecordViewState("news", "success")
	if r.Registry() != nil {
		t.Fatalf("nil recorder should not expose a registry")
	}
}
