package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/application/export"
	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/interfaces/http/dto"
	"prd-coach-api/pkg/logger"
)

// Exporter PRD 导出能力
type Exporter interface {
	Render(idea entity.IdeaContext, sections []entity.SectionDescriptor, progress entity.ProgressState) (*export.Document, error)
}

// ExportHandler 导出处理器
type ExportHandler struct {
	exporter Exporter
}

// NewExportHandler 创建导出处理器
func NewExportHandler(exporter Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Export 导出 PRD
// @Summary 导出 PRD
// @Description 按章节顺序把草稿渲染为 Markdown 与 HTML，并返回完成进度
// @Tags PRD
// @Accept json
// @Produce json
// @Param body body dto.ExportRequest true "导出请求"
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/prd/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, invalidBody)
		return
	}

	doc, err := h.exporter.Render(req.IdeaContext, entity.NormalizeSectionIDs(req.Sections), req.Drafts)
	if err != nil {
		logger.Error(ctx, "failed to export prd", err)
		dto.RespondError(c, err)
		return
	}

	logger.Info(ctx, "prd exported", "completed", doc.Progress.Completed, "total", doc.Progress.Total)
	dto.Success(c, doc)
}
