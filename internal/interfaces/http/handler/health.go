package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker 可探测的依赖
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version string
	checks  map[string]HealthChecker
}

// NewHealthHandler 创建健康检查处理器；checks 中的依赖全部健康才算就绪
func NewHealthHandler(version string, checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: h.version})
}

// Ready 就绪检查接口
// @Summary 就绪检查
// @Description 依次探测已配置的依赖（目前只有 Redis）
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := readinessResponse{Status: "ok", Checks: make(map[string]*readinessCheck, len(h.checks))}
	for name, checker := range h.checks {
		start := time.Now()
		err := checker.HealthCheck(ctx)
		check := &readinessCheck{Status: "ok", LatencyMs: time.Since(start).Milliseconds()}
		if err != nil {
			check.Status = "error"
			check.Error = err.Error()
			resp.Status = "not_ready"
		}
		resp.Checks[name] = check
	}

	if resp.Status != "ok" {
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
