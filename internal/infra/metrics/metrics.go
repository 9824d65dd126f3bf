// Package metrics exposes Prometheus instrumentation for the HTTP surface and the marketplace.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"carmarket/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carmarket"

// Metrics owns a private registry so tests and multiple binaries never collide on the global one.
type Metrics struct {
	registry *prometheus.Registry
	service  string

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	requestsCreated   prometheus.Counter
	offersSubmitted   prometheus.Counter
	offerTransitions  *prometheus.CounterVec
	messagesPosted    *prometheus.CounterVec
	requestsExpired   prometheus.Counter
	notificationsSent *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New(cfg *config.Config) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		service:  cfg.Env.ServiceName,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "path", "status"}),
		requestsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buyer_requests_created_total",
			Help:      "Buyer requests created",
		}),
		offersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_submitted_total",
			Help:      "Offers submitted by dealers",
		}),
		offerTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_status_changes_total",
			Help:      "Offer status transitions by target status",
		}, []string{"status"}),
		messagesPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_messages_posted_total",
			Help:      "Offer thread messages by sender role",
		}, []string{"sender_role"}),
		requestsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buyer_requests_expired_total",
			Help:      "Buyer requests expired by the sweep",
		}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Push notifications by outcome",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.requestsCreated,
		m.offersSubmitted,
		m.offerTransitions,
		m.messagesPosted,
		m.requestsExpired,
		m.notificationsSent,
	)

	return m
}

// RegisterDBStats publishes connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Render now so the recorded status is the one the client gets.
				c.Error(err)
			}
			status := c.Response().Status

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			labels := []string{m.service, c.Request().Method, path, strconv.Itoa(status)}

			m.requests.WithLabelValues(labels...).Inc()
			m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RequestCreated() {
	m.requestsCreated.Inc()
}

func (m *Metrics) OfferSubmitted() {
	m.offersSubmitted.Inc()
}

func (m *Metrics) OfferStatusChanged(status string) {
	m.offerTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) MessagePosted(senderRole string) {
	m.messagesPosted.WithLabelValues(senderRole).Inc()
}

func (m *Metrics) RequestsExpired(n int) {
	m.requestsExpired.Add(float64(n))
}

func (m *Metrics) NotificationsSent(success, failure int) {
	m.notificationsSent.WithLabelValues("success").Add(float64(success))
	m.notificationsSent.WithLabelValues("failure").Add(float64(failure))
}
