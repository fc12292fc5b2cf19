package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fedashop_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fedashop_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// OrdersTotal counts order creation attempts by outcome
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fedashop_orders_total",
			Help: "Total number of order creation attempts",
		},
		[]string{"status"},
	)

	// OrderAmount tracks placed order totals
	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fedashop_order_amount_sar",
			Help:    "Placed order totals in riyals",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500},
		},
	)

	// CartMutations counts dispatched cart actions
	CartMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fedashop_cart_mutations_total",
			Help: "Total number of cart actions dispatched",
		},
		[]string{"action"},
	)

	// CartSlotErrors counts failed cart slot reads and writes
	CartSlotErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fedashop_cart_slot_errors_total",
			Help: "Total number of failed cart slot operations",
		},
		[]string{"op"},
	)

	// BreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fedashop_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"breaker"},
	)
)

// Middleware records request counts and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
