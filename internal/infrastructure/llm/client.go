// Package llm 封装上游 OpenAI 兼容的 chat-completion 网关
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"prd-coach-api/internal/config"
	"prd-coach-api/internal/workflow/node"
	apperrors "prd-coach-api/pkg/errors"
	"prd-coach-api/pkg/logger"
	"prd-coach-api/pkg/metrics"
	"prd-coach-api/pkg/tracer"
)

// CompletionRequest 单次补全请求：一条 system + 一条 user 消息
type CompletionRequest struct {
	// Operation 调用方标识，用于指标和日志
	Operation string
	System    string
	User      string

	Temperature         *float64
	MaxCompletionTokens *int
}

// Completer 补全接口，应用层依赖此接口
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// UpstreamError 上游非 2xx 或传输失败，StatusCode 为 0 表示没有拿到响应
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, node.Preview(e.Body, 300))
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client 基于 openai-go 的补全客户端，可并发使用
type Client struct {
	client openai.Client
	model  string
}

// NewClient 创建补全客户端；凭证缺失属于配置错误
func NewClient(cfg *config.LLMConfig, extra ...option.RequestOption) (*Client, error) {
	if cfg == nil {
		return nil, apperrors.ErrConfiguration.WithDetail("llm config is nil")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.ErrConfiguration.WithDetail("llm.api_key is not configured")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, apperrors.ErrConfiguration.WithDetail("llm.model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// 每次调用只发一次请求，由调用方决定是否重试
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	opts = append(opts, extra...)

	return &Client{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// Model 返回使用的模型名
func (c *Client) Model() string {
	return c.model
}

// Complete 发送一次 chat-completion 请求，返回第一个 choice 的原始文本
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, span := tracer.Start(ctx, "llm.Complete", trace.WithAttributes(
		attribute.String("llm.operation", req.Operation),
		attribute.String("llm.model", c.model),
	))
	defer span.End()

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxCompletionTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*req.MaxCompletionTokens))
	}

	// 记录原始失败响应：非 JSON 的错误体 SDK 无法解析，状态码会丢失
	var failure *UpstreamError
	capture := option.WithMiddleware(func(r *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		resp, err := next(r)
		if err != nil || resp.StatusCode < http.StatusMultipleChoices {
			return resp, err
		}
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))
		failure = &UpstreamError{StatusCode: resp.StatusCode, Body: string(body), Err: readErr}
		return resp, nil
	})

	start := time.Now()
	completion, err := c.client.Chat.Completions.New(ctx, params, capture)
	elapsed := time.Since(start)
	metrics.LLMCallDuration.WithLabelValues(req.Operation, c.model).Observe(elapsed.Seconds())

	if err != nil {
		classified := classify(err, failure)
		metrics.LLMCallTotal.WithLabelValues(req.Operation, c.model, statusLabel(classified)).Inc()
		tracer.RecordError(span, classified)
		logger.Warn(ctx, "completion call failed",
			"operation", req.Operation,
			"model", c.model,
			"duration_ms", elapsed.Milliseconds(),
			"error", classified.Error(),
		)
		return "", classified
	}

	metrics.LLMCallTotal.WithLabelValues(req.Operation, c.model, "ok").Inc()
	span.SetAttributes(
		attribute.Int("llm.choices", len(completion.Choices)),
		attribute.Int64("llm.usage.total_tokens", completion.Usage.TotalTokens),
	)
	logger.Debug(ctx, "completion call succeeded",
		"operation", req.Operation,
		"model", c.model,
		"duration_ms", elapsed.Milliseconds(),
	)

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// classify 把上游错误映射到应用错误：429 限流、402 额度耗尽，其它统一为上游错误
func classify(err error, failure *UpstreamError) error {
	upErr := failure
	if upErr == nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			upErr = &UpstreamError{StatusCode: apiErr.StatusCode, Body: apiErr.RawJSON(), Err: err}
		} else {
			upErr = &UpstreamError{Err: err}
		}
	} else if upErr.Err == nil {
		upErr.Err = err
	}

	switch upErr.StatusCode {
	case http.StatusTooManyRequests:
		return apperrors.ErrRateLimited.WithError(upErr)
	case http.StatusPaymentRequired:
		return apperrors.ErrQuotaExhausted.WithError(upErr)
	default:
		return apperrors.ErrUpstream.WithError(upErr)
	}
}

func statusLabel(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, apperrors.ErrQuotaExhausted):
		return "quota_exhausted"
	default:
		return "error"
	}
}

// AsUpstreamError 提取上游错误详情
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	ok := errors.As(err, &upErr)
	return upErr, ok
}

// Float 返回指针，便于构造 CompletionRequest
func Float(f float64) *float64 { return &f }

// Int 返回指针，便于构造 CompletionRequest
func Int(i int) *int { return &i }
