package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Preflight 响应不带 Origin 的 OPTIONS 请求；带 Origin 的预检已由 CORS 中间件处理
func Preflight(allowedHeaders []string) gin.HandlerFunc {
	headers := strings.ToLower(strings.Join(allowedHeaders, ", "))
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", headers)
		c.Status(http.StatusOK)
	}
}
