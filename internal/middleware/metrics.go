package middleware

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/tickethub-io/tickethub/internal/metrics"
)

// Metrics records request counts and latency per route template, so
// /api/orders/:id stays one series regardless of the id.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
