package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := serve(engine, http.MethodGet, "/x", nil)
	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	w = serve(engine, http.MethodGet, "/x", map[string]string{RequestIDHeader: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecoveryReturnsErrorBody(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery())
	engine.GET("/panic", func(*gin.Context) { panic("boom") })

	w := serve(engine, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestAuthDisabledWithoutToken(t *testing.T) {
	engine := gin.New()
	engine.Use(Auth(AuthConfig{}))
	engine.GET("/v1/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/v1/x", nil).Code)
}

func TestAuthSkipsPreflightAndProbes(t *testing.T) {
	engine := gin.New()
	engine.Use(Auth(AuthConfig{Token: "secret", SkipPaths: DefaultSkipPaths}))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	engine.OPTIONS("/v1/x", ok)
	engine.GET("/v1/x", ok)
	engine.GET("/health", ok)

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodOptions, "/v1/x", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/v1/x", nil).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/v1/x", map[string]string{"Authorization": "bearer secret"}).Code)
}

type countingLimiter struct {
	calls int
	err   error
}

func (l *countingLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	l.calls++
	return l.calls <= 1, l.err
}

func TestRateLimit(t *testing.T) {
	limiter := &countingLimiter{}
	engine := gin.New()
	engine.Use(RateLimit(RateLimitConfig{Enabled: true, RequestsPerMinute: 1}, limiter))
	engine.POST("/v1/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/v1/x", nil).Code)
	w := serve(engine, http.MethodPost, "/v1/x", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limit exceeded")
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &countingLimiter{calls: 10, err: errors.New("redis down")}
	engine := gin.New()
	engine.Use(RateLimit(RateLimitConfig{Enabled: true}, limiter))
	engine.POST("/v1/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "/v1/x", nil).Code)
}

func TestCORSAllowsAllOrigins(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS(CORSConfig{AllowedOrigins: []string{"*"}}))
	engine.POST("/v1/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(engine, http.MethodPost, "/v1/x", map[string]string{"Origin": "https://app.example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
