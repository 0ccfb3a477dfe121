package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	"prd-coach-api/pkg/logger"
)

// TraceIDHeader 响应中回传的追踪 ID
const TraceIDHeader = "X-Trace-ID"

// Trace OpenTelemetry 追踪中间件，预检与探活请求不建 span
func Trace(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName, otelgin.WithFilter(func(r *http.Request) bool {
		if r.Method == http.MethodOptions {
			return false
		}
		switch r.URL.Path {
		case "/health", "/live", "/ready", "/metrics":
			return false
		}
		return true
	}))
}

// TraceContext 把 trace_id / span_id 注入日志上下文和响应头
func TraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := trace.SpanFromContext(c.Request.Context()).SpanContext()
		if sc.IsValid() {
			traceID := sc.TraceID().String()
			spanID := sc.SpanID().String()

			c.Set("trace_id", traceID)
			ctx := logger.WithContext(c.Request.Context(), logger.TraceIDKey, traceID)
			ctx = logger.WithContext(ctx, logger.SpanIDKey, spanID)
			c.Request = c.Request.WithContext(ctx)
			c.Header(TraceIDHeader, traceID)
		}

		c.Next()
	}
}
