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
		prometheus.CounterOpts{Namespace: "aurora", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aurora", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ChatTurns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "chat_turns_total", Help: "Dialog turns by classified intent."},
		[]string{"intent"},
	)
	RetrievalEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "retrieval_events_total", Help: "Knowledge-base lookups."},
		[]string{"outcome"}, // outcome: hit|miss
	)
	SessionEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "session_events_total", Help: "Session store hits/misses/puts/dels."},
		[]string{"store", "event"},
	)
)

// Serve starts the standalone metrics listener when METRICS_ADDR is set.
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
	reg.MustRegister(HTTPRequests, HTTPLatency, ChatTurns, RetrievalEvents, SessionEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveTurn(intent string) {
	ChatTurns.WithLabelValues(intent).Inc()
}

func ObserveRetrieval(outcome string) { // outcome: hit|miss
	RetrievalEvents.WithLabelValues(outcome).Inc()
}

func ObserveSession(store, event string) { // event: hit|miss|put|del
	SessionEvents.WithLabelValues(store, event).Inc()
}
