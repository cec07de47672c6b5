package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safestay/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "POST", 200, 12*time.Millisecond)
	observability.ObserveSearch("relevance", 3*time.Millisecond)
	observability.ObserveFraudFlag("duplicate")
	observability.ObserveFavorites("add")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, metric := range []string{
		"safestay_http_requests_total",
		"safestay_searches_total",
		"safestay_fraud_flags_total",
		"safestay_favorites_events_total",
	} {
		if !strings.Contains(out, metric) {
			t.Fatalf("expected %s in output", metric)
		}
	}
}
