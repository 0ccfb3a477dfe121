package handler

import (
	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/interfaces/http/dto"
)

// SectionsHandler 内置章节处理器
type SectionsHandler struct{}

// NewSectionsHandler 创建内置章节处理器
func NewSectionsHandler() *SectionsHandler {
	return &SectionsHandler{}
}

// List 返回内置的章节列表
// @Summary 内置章节
// @Tags PRD
// @Produce json
// @Success 200 {object} dto.SectionsResponse
// @Router /v1/sections [get]
func (h *SectionsHandler) List(c *gin.Context) {
	dto.Success(c, dto.SectionsResponse{Sections: entity.DefaultSections()})
}
