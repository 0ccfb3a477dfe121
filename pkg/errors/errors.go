// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeSuccess            ErrorCode = "0"
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeUnauthorized       ErrorCode = "1002"
	CodeNotFound           ErrorCode = "1004"
	CodeTooManyRequests    ErrorCode = "1006"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"

	// 认证错误 (2xxx)
	CodeTokenInvalid ErrorCode = "2002"
	CodeTokenMissing ErrorCode = "2003"

	// 业务错误 (4xxx)
	CodeFeedbackFailed   ErrorCode = "4001"
	CodeOutlineMalformed ErrorCode = "4002"
	CodeExportFailed     ErrorCode = "4003"

	// 外部服务错误 (5xxx)
	CodeUpstreamRateLimited ErrorCode = "5001"
	CodeUpstreamQuota       ErrorCode = "5002"
	CodeUpstreamError       ErrorCode = "5003"
	CodeConfiguration       ErrorCode = "5004"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，便于 errors.Is 匹配预定义错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail 返回带详细信息的副本
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// WithError 返回带底层错误的副本
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeTokenInvalid, CodeTokenMissing:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests, CodeUpstreamRateLimited:
		return http.StatusTooManyRequests
	case CodeUpstreamQuota:
		return http.StatusPaymentRequired
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// 预定义错误
var (
	ErrInvalidParam       = New(CodeInvalidParam, "invalid parameter")
	ErrUnauthorized       = New(CodeUnauthorized, "unauthorized")
	ErrNotFound           = New(CodeNotFound, "resource not found")
	ErrTooManyRequests    = New(CodeTooManyRequests, "too many requests")
	ErrInternalError      = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "service unavailable")

	ErrTokenInvalid = New(CodeTokenInvalid, "token invalid")
	ErrTokenMissing = New(CodeTokenMissing, "token missing")

	ErrRateLimited    = New(CodeUpstreamRateLimited, "Rate limit exceeded. Please try again in a moment.")
	ErrQuotaExhausted = New(CodeUpstreamQuota, "AI credits depleted. Please add credits to continue.")
	ErrUpstream       = New(CodeUpstreamError, "Failed to get AI response")
	ErrConfiguration  = New(CodeConfiguration, "invalid configuration")

	ErrFeedbackFailed   = New(CodeFeedbackFailed, "feedback generation failed")
	ErrOutlineMalformed = New(CodeOutlineMalformed, "outline reply is not a valid sections object")
	ErrExportFailed     = New(CodeExportFailed, "export failed")
)

// IsAppError 检查是否为 AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}
