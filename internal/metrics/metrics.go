// Package metrics registers the Prometheus instruments exposed on
// /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tickethub_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tickethub_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickethub_orders_created_total",
		Help: "Orders created.",
	})

	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tickethub_order_transitions_total",
		Help: "Order status transitions by target status.",
	}, []string{"status"})

	PaymentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tickethub_payments_total",
		Help: "Payment gateway calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	PaymentDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tickethub_payment_duration_seconds",
		Help:    "Payment gateway call latency by operation.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"operation"})

	TicketsReservedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickethub_tickets_reserved_total",
		Help: "Tickets reserved through order creation.",
	})

	TicketsReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickethub_tickets_released_total",
		Help: "Tickets returned to inventory by cancellations and refunds.",
	})

	RemindersSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickethub_event_reminders_sent_total",
		Help: "Event reminder batches dispatched by the scheduler.",
	})
)

// ObservePayment records one gateway call.
func ObservePayment(operation string, succeeded bool, seconds float64) {
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	PaymentsTotal.WithLabelValues(operation, outcome).Inc()
	PaymentDuration.WithLabelValues(operation).Observe(seconds)
}
