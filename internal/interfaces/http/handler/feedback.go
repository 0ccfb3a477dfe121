// Package handler 提供 HTTP 请求处理器
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/application/feedback"
	"prd-coach-api/internal/interfaces/http/dto"
	"prd-coach-api/pkg/logger"
)

// invalidBody 请求体无法解析时的提示。relay 接口约定只有 200/402/429/500，因此按 500 返回。
const invalidBody = "invalid request body"

// FeedbackGenerator 章节点评能力
type FeedbackGenerator interface {
	Generate(ctx context.Context, req feedback.Request) (string, error)
}

// FeedbackHandler 章节点评处理器
type FeedbackHandler struct {
	relay FeedbackGenerator
}

// NewFeedbackHandler 创建章节点评处理器
func NewFeedbackHandler(relay FeedbackGenerator) *FeedbackHandler {
	return &FeedbackHandler{relay: relay}
}

// Generate 获取章节点评
// @Summary 获取章节点评
// @Description 把章节草稿转发给上游模型，原样返回点评文本
// @Tags PRD
// @Accept json
// @Produce json
// @Param body body dto.FeedbackRequest true "点评请求"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 402 {object} dto.ErrorResponse "上游额度耗尽"
// @Failure 429 {object} dto.ErrorResponse "上游限流"
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/prd-feedback [post]
func (h *FeedbackHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "invalid feedback request", "error", err.Error())
		dto.Error(c, http.StatusInternalServerError, invalidBody)
		return
	}

	text, err := h.relay.Generate(ctx, feedback.Request{
		Section: req.Section,
		Content: req.Content,
		Idea:    req.IdeaContext,
	})
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	dto.Success(c, dto.FeedbackResponse{Feedback: text})
}
