package metrics

import (
	"strconv"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	recordsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_records_created_total",
			Help: "CRM records created by entity type.",
		},
		[]string{"entity"},
	)
)

// Middleware counts every request after the handler chain resolved, keyed by
// the matched route pattern rather than the raw path so ids don't explode
// label cardinality.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}
		httpRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// RecordCreated counts a successful entity creation.
func RecordCreated(entity string) {
	recordsCreatedTotal.WithLabelValues(entity).Inc()
}

// Handler exposes the Prometheus scrape endpoint as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
