package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"prd-coach-api/pkg/metrics"
)

// Metrics Prometheus 指标采集中间件，未匹配路由统一记为 unmatched 以控制标签基数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		if size := c.Request.ContentLength; size > 0 {
			metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(float64(size))
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
