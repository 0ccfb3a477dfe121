package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/interfaces/http/dto"
	"prd-coach-api/pkg/logger"
)

// OutlineParser 大纲解析能力，失败时返回空列表
type OutlineParser interface {
	Parse(ctx context.Context, outline string) []entity.SectionDescriptor
}

// OutlineHandler 大纲解析处理器
type OutlineHandler struct {
	parser OutlineParser
}

// NewOutlineHandler 创建大纲解析处理器
func NewOutlineHandler(parser OutlineParser) *OutlineHandler {
	return &OutlineHandler{parser: parser}
}

// Parse 解析自定义大纲
// @Summary 解析自定义大纲
// @Description 把自由格式的大纲整理为章节列表；上游失败或回复无法解析时返回 200 和空列表，500 只出现在请求体不合法时
// @Tags PRD
// @Accept json
// @Produce json
// @Param body body dto.ParseOutlineRequest true "大纲"
// @Success 200 {object} dto.SectionsResponse
// @Failure 500 {object} dto.OutlineErrorResponse
// @Router /v1/parse-outline [post]
func (h *OutlineHandler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ParseOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn(ctx, "invalid outline request", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.OutlineErrorResponse{
			Error:    invalidBody,
			Sections: []entity.SectionDescriptor{},
		})
		return
	}

	sections := h.parser.Parse(ctx, req.CustomOutline)
	if sections == nil {
		sections = []entity.SectionDescriptor{}
	}
	dto.Success(c, dto.SectionsResponse{Sections: sections})
}
