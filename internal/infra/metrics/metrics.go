// Package metrics owns the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel_booking"

type Collectors struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	gatewayRequests *prometheus.CounterVec
	gatewayDuration *prometheus.HistogramVec
	breakerState    *prometheus.GaugeVec
	bookings        *prometheus.CounterVec
	payments        *prometheus.CounterVec
	notifications   *prometheus.CounterVec
}

// New registers every collector on a fresh registry together with the Go and process collectors.
func New() *Collectors {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Collectors{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatewayRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_gateway_requests_total",
			Help:      "Payment gateway calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		gatewayDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "payment_gateway_request_duration_seconds",
			Help:      "Payment gateway call latency",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"operation"}),
		breakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "0 closed, 1 half-open, 2 open",
		}, []string{"name"}),
		bookings: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome",
		}, []string{"outcome"}),
		payments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_verifications_total",
			Help:      "Payment verifications by resulting payment status",
		}, []string{"status", "changed"}),
		notifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by event and outcome",
		}, []string{"event", "outcome"}),
	}
}

func (c *Collectors) Registry() *prometheus.Registry { return c.registry }

func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collectors) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collectors) ObserveGateway(operation, outcome string, d time.Duration) {
	c.gatewayRequests.WithLabelValues(operation, outcome).Inc()
	c.gatewayDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (c *Collectors) SetBreakerState(name string, state int) {
	c.breakerState.WithLabelValues(name).Set(float64(state))
}

func (c *Collectors) BookingOutcome(outcome string) {
	c.bookings.WithLabelValues(outcome).Inc()
}

func (c *Collectors) PaymentVerified(status string, changed bool) {
	ch := "false"
	if changed {
		ch = "true"
	}
	c.payments.WithLabelValues(status, ch).Inc()
}

func (c *Collectors) NotificationOutcome(event, outcome string) {
	c.notifications.WithLabelValues(event, outcome).Inc()
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
