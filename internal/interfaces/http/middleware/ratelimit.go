package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/interfaces/http/dto"
	"prd-coach-api/pkg/logger"
	"prd-coach-api/pkg/metrics"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
}

// RateLimiter 限流器接口
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit 按客户端 IP 与路径做入站限流，预检请求不计数
func RateLimit(cfg RateLimitConfig, limiter RateLimiter) gin.HandlerFunc {
	if !cfg.Enabled || limiter == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := c.ClientIP() + ":" + path

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg.RequestsPerMinute, time.Minute)
		if err != nil {
			// 限流器故障时放行
			logger.Warn(c.Request.Context(), "rate limiter unavailable", "error", err.Error())
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimitRejected.WithLabelValues(path).Inc()
			dto.AbortWithError(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
			return
		}

		c.Next()
	}
}
