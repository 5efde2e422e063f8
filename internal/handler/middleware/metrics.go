package middleware

import (
	"strconv"
	"time"

	"grooming-salon/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template, so
// /api/bookings/:id stays one series however many ids are requested.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
