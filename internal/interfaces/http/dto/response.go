// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prd-coach-api/internal/domain/entity"
	apperrors "prd-coach-api/pkg/errors"
	"prd-coach-api/pkg/logger"
)

// ErrorResponse 错误响应，与前端约定只有 error 一个字段
type ErrorResponse struct {
	Error string `json:"error"`
}

// OutlineErrorResponse 大纲解析错误响应，仍然携带空的 sections
type OutlineErrorResponse struct {
	Error    string                     `json:"error"`
	Sections []entity.SectionDescriptor `json:"sections"`
}

// Success 返回 200 响应
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, data)
}

// Error 返回错误响应
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorResponse{Error: message})
}

// AbortWithError 终止请求并返回错误响应
func AbortWithError(c *gin.Context, httpCode int, message string) {
	c.AbortWithStatusJSON(httpCode, ErrorResponse{Error: message})
}

// FromError 把错误映射为状态码和面向用户的消息；非 AppError 不暴露内部文本
func FromError(err error) (int, string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Message
	}
	return apperrors.ErrInternalError.HTTPStatus, apperrors.ErrInternalError.Message
}

// RespondError 按错误类型写出响应
func RespondError(c *gin.Context, err error) {
	if !apperrors.IsAppError(err) {
		logger.Error(c.Request.Context(), "unclassified error", err)
	}
	status, msg := FromError(err)
	Error(c, status, msg)
}
