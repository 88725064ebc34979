package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsCaptured = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured from the public form",
		},
	)

	interactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_interactions_total",
			Help: "Total number of CRM interactions by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	bookingStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_status_changes_total",
			Help: "Total number of booking status changes",
		},
		[]string{"status"},
	)

	authFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "admin_auth_failures_total",
			Help: "Total number of rejected admin logins and sessions",
		},
	)

	staleLeads = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_stale",
			Help: "Leads still New after the follow-up window",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern usa o padrão da rota do chi (/admin/leads/{id}) para não
// explodir a cardinalidade com um label por ID.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

func RecordLeadCaptured() {
	leadsCaptured.Inc()
}

// Resultados de crm_interactions_total.
const (
	InteractionSent     = "sent"
	InteractionFailed   = "failed"
	InteractionRejected = "rejected" // já havia um envio em andamento
)

func RecordInteraction(kind, outcome string) {
	interactionsSent.WithLabelValues(kind, outcome).Inc()
}

func RecordBookingStatus(status string) {
	bookingStatusChanges.WithLabelValues(status).Inc()
}

func RecordAuthFailure() {
	authFailures.Inc()
}

func SetStaleLeads(n int) {
	staleLeads.Set(float64(n))
}
