package observability

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safestay", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "safestay", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Searches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safestay", Name: "searches_total", Help: "Search requests by sort key."},
		[]string{"sort"},
	)
	SearchLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "safestay", Name: "search_duration_seconds",
			Help:    "Search pipeline duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	FraudFlags = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safestay", Name: "fraud_flags_total", Help: "Fraud signals raised on search results."},
		[]string{"type"}, // type: duplicate|fake_profile|<profile flag type>
	)
	FavoritesEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "safestay", Name: "favorites_events_total", Help: "Favorites store operations."},
		[]string{"event"}, // event: add|remove|list
	)
)

// Serve starts a standalone metrics listener when METRICS_ADDR is set. The
// main router also exposes /metrics, so this is optional.
func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Searches, SearchLatency, FraudFlags, FavoritesEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveSearch(sort string, dur time.Duration) {
	Searches.WithLabelValues(sort).Inc()
	SearchLatency.Observe(dur.Seconds())
}

func ObserveFraudFlag(kind string) {
	FraudFlags.WithLabelValues(kind).Inc()
}

func ObserveFavorites(event string) { // event: add|remove|list
	FavoritesEvents.WithLabelValues(event).Inc()
}
