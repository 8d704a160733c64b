package middleware

import (
	"net/http"
	"strconv"
	"time"

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
			Help: "Total number of leads captured",
		},
	)

	demoRequestsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "demo_requests_received_total",
			Help: "Total number of demo requests received",
		},
	)

	contactMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact form messages",
		},
	)

	captchaRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "captcha_rejections_total",
			Help: "Total number of submissions rejected by captcha",
		},
		[]string{"reason"},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_sent_total",
			Help: "Total number of notification emails attempted",
		},
		[]string{"result"},
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

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadCaptured() {
	leadsCaptured.Inc()
}

func RecordDemoRequestReceived() {
	demoRequestsReceived.Inc()
}

func RecordContactMessage() {
	contactMessages.Inc()
}

func RecordCaptchaRejection(reason string) {
	captchaRejections.WithLabelValues(reason).Inc()
}

func RecordEmail(result string) {
	emailsSent.WithLabelValues(result).Inc()
}
