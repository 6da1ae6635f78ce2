package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/paclead/platform-backend/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "platform",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platform",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// UAZAPI collaborator metrics

	UazapiRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "platform",
		Name:      "uazapi_request_duration_seconds",
		Help:      "Latency of outbound UAZAPI calls.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
	}, []string{"endpoint"})

	UazapiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platform",
		Name:      "uazapi_requests_total",
		Help:      "Total outbound UAZAPI calls, by endpoint and status.",
	}, []string{"endpoint", "status"})

	// Auth metrics

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "platform",
		Name:      "logins_total",
		Help:      "Login attempts, by outcome.",
	}, []string{"outcome"})

	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "platform",
		Name:      "signups_total",
		Help:      "Accounts created.",
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		UazapiRequestDuration,
		UazapiRequestsTotal,
		LoginsTotal,
		SignupsTotal,
	)
}

// NewServer exposes /metrics plus liveness and readiness probes on a
// separate port, away from the public API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
