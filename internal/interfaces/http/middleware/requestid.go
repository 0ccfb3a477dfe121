package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prd-coach-api/pkg/logger"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

// 入站请求 ID 超过该长度时重新生成
const maxRequestIDLen = 128

// RequestID 请求 ID 注入中间件
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		ctx := logger.WithContext(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}
