// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedHeaders 浏览器端 supabase-js 风格客户端会携带的请求头
var DefaultAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// CORSConfig CORS 配置
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// CORS 跨域中间件。预检请求直接以 200 空响应结束。
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = DefaultAllowedHeaders
	}

	c := cors.Config{
		AllowMethods:              cfg.AllowedMethods,
		AllowHeaders:              cfg.AllowedHeaders,
		ExposeHeaders:             []string{RequestIDHeader, TraceIDHeader},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(c)
}
