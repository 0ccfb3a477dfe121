package dto

import (
	"prd-coach-api/internal/application/export"
	"prd-coach-api/internal/domain/entity"
)

// FeedbackRequest 章节点评请求
type FeedbackRequest struct {
	Section     string             `json:"section"`
	Content     string             `json:"content"`
	IdeaContext entity.IdeaContext `json:"ideaContext"`
}

// FeedbackResponse 章节点评响应
type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

// ParseOutlineRequest 大纲解析请求
type ParseOutlineRequest struct {
	CustomOutline string `json:"customOutline"`
}

// SectionsResponse 章节列表响应
type SectionsResponse struct {
	Sections []entity.SectionDescriptor `json:"sections"`
}

// ExportRequest 导出请求；sections 为空时使用内置章节
type ExportRequest struct {
	IdeaContext entity.IdeaContext         `json:"ideaContext"`
	Sections    []entity.SectionDescriptor `json:"sections,omitempty"`
	Drafts      entity.ProgressState       `json:"drafts"`
}

// ExportResponse 导出响应
type ExportResponse = export.Document
