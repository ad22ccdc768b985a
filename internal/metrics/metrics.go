package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Concourse
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Database Metrics
	DBQueryDuration *prometheus.HistogramVec

	// Business Metrics
	OrdersTotal   *prometheus.CounterVec
	TicketsBooked prometheus.Counter
}

// NewMetricsRegistry registers every metric on reg (prometheus.DefaultRegisterer in production)
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concourse_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "concourse_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "concourse_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		// Database Metrics
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "concourse_db_query_duration_seconds",
				Help:    "Database transaction execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Business Metrics
		OrdersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "concourse_orders_total",
				Help: "Order submissions by outcome",
			},
			[]string{"outcome"},
		),
		TicketsBooked: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "concourse_tickets_booked_total",
				Help: "Tickets persisted by committed orders",
			},
		),
	}
}

// Order outcomes
const (
	OutcomeCreated   = "created"
	OutcomeInvalid   = "invalid"
	OutcomeSeatTaken = "seat_taken"
	OutcomeNotFound  = "not_found"
	OutcomeError     = "error"

	QueryTypeBooking = "booking_tx"
)

// ObserveOrder records one order attempt. Safe on a nil registry.
func (m *MetricsRegistry) ObserveOrder(outcome string, tickets int, took time.Duration) {
	if m == nil {
		return
	}
	m.OrdersTotal.WithLabelValues(outcome).Inc()
	m.DBQueryDuration.WithLabelValues(QueryTypeBooking).Observe(took.Seconds())
	if outcome == OutcomeCreated {
		m.TicketsBooked.Add(float64(tickets))
	}
}
