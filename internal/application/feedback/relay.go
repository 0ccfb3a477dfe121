// Package feedback 把 PRD 章节内容转发给上游模型获取点评
package feedback

import (
	"context"
	"errors"
	"strings"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/infrastructure/llm"
	apperrors "prd-coach-api/pkg/errors"
	"prd-coach-api/pkg/logger"
	"prd-coach-api/pkg/metrics"
)

// FallbackText 上游没有返回任何内容时的提示
const FallbackText = "Unable to generate feedback"

// DefaultTemperature 适度发散
const DefaultTemperature = 0.7

// Request 单次点评请求
type Request struct {
	Section string
	Content string
	Idea    entity.IdeaContext
}

// Relay 点评转发器，无状态，可并发使用
type Relay struct {
	completer   llm.Completer
	temperature float64
}

// NewRelay 创建点评转发器；temperature 为负数时使用默认值，0 表示确定性输出
func NewRelay(completer llm.Completer, temperature float64) *Relay {
	if temperature < 0 {
		temperature = DefaultTemperature
	}
	return &Relay{completer: completer, temperature: temperature}
}

// Generate 发起一次补全请求并原样返回第一个 choice 的文本。
// 内容为空时同样转发，由调用方负责前置校验。
// 错误：apperrors.ErrRateLimited / ErrQuotaExhausted / ErrUpstream，模板渲染失败为 ErrFeedbackFailed。
func (r *Relay) Generate(ctx context.Context, req Request) (string, error) {
	ctx = logger.WithContext(ctx, logger.SectionKey, req.Section)
	logger.Info(ctx, "generating feedback", "content_chars", len(req.Content))

	msgs, err := Messages(ctx, req)
	if err != nil {
		logger.Error(ctx, "failed to render feedback prompt", err)
		return "", apperrors.ErrFeedbackFailed.WithError(err)
	}

	text, err := r.completer.Complete(ctx, llm.CompletionRequest{
		Operation:   "feedback",
		System:      msgs.System,
		User:        msgs.User,
		Temperature: llm.Float(r.temperature),
	})
	if err != nil {
		metrics.FeedbackTotal.WithLabelValues(outcome(err)).Inc()
		if upErr, ok := llm.AsUpstreamError(err); ok {
			logger.Error(ctx, "AI gateway error", err, "status", upErr.StatusCode, "body", upErr.Body)
		} else {
			logger.Error(ctx, "AI gateway error", err)
		}
		if apperrors.IsAppError(err) {
			return "", err
		}
		return "", apperrors.ErrUpstream.WithError(err)
	}

	if strings.TrimSpace(text) == "" {
		metrics.FeedbackTotal.WithLabelValues("empty").Inc()
		return FallbackText, nil
	}

	metrics.FeedbackTotal.WithLabelValues("ok").Inc()
	logger.Info(ctx, "feedback generated successfully")
	return text, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, apperrors.ErrQuotaExhausted):
		return "quota_exhausted"
	default:
		return "upstream_error"
	}
}
