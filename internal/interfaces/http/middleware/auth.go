package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/interfaces/http/dto"
	apperrors "prd-coach-api/pkg/errors"
)

// AuthConfig 认证配置
type AuthConfig struct {
	// Token 静态 Bearer Token，为空表示不校验
	Token string
	// SkipPaths 跳过认证的路径前缀
	SkipPaths []string
}

// DefaultSkipPaths 默认跳过认证的路径
var DefaultSkipPaths = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
}

// Auth 静态 Token 认证中间件，OPTIONS 预检始终放行
func Auth(cfg AuthConfig) gin.HandlerFunc {
	if cfg.Token == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	want := []byte(cfg.Token)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		for _, p := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, p) {
				c.Next()
				return
			}
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, apperrors.ErrTokenMissing)
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			abortUnauthorized(c, apperrors.ErrTokenInvalid)
			return
		}
		if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), want) != 1 {
			abortUnauthorized(c, apperrors.ErrTokenInvalid)
			return
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	dto.AbortWithError(c, err.HTTPStatus, err.Message)
}
