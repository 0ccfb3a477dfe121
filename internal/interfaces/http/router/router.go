// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"prd-coach-api/internal/config"
	"prd-coach-api/internal/interfaces/http/handler"
	"prd-coach-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的处理器集合
type Handlers struct {
	Health   *handler.HealthHandler
	Feedback *handler.FeedbackHandler
	Outline  *handler.OutlineHandler
	Sections *handler.SectionsHandler
	Export   *handler.ExportHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
	limiter  middleware.RateLimiter
}

// New 创建路由器；limiter 为 nil 时不做入站限流
func New(cfg *config.Config, handlers Handlers, limiter middleware.RateLimiter) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
		limiter:  limiter,
	}
	r.setupMiddleware()
	r.setupRoutes()
	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

func (r *Router) setupRoutes() {
	h := r.handlers

	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.cfg.Observability.Metrics.Enabled {
		path := r.cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/v1")
	v1.Use(middleware.Auth(middleware.AuthConfig{
		Token:     r.cfg.Security.Auth.Token,
		SkipPaths: middleware.DefaultSkipPaths,
	}))
	v1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Enabled:           r.cfg.Security.RateLimit.Enabled,
		RequestsPerMinute: r.cfg.Security.RateLimit.RequestsPerMinute,
	}, r.limiter))

	RegisterV1Routes(v1, h, handler.Preflight(r.allowedHeaders()))
}

func (r *Router) allowedHeaders() []string {
	if hs := r.cfg.Security.CORS.AllowedHeaders; len(hs) > 0 {
		return hs
	}
	return middleware.DefaultAllowedHeaders
}
