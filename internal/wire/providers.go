// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"prd-coach-api/internal/application/feedback"
	"prd-coach-api/internal/application/outline"
	"prd-coach-api/internal/config"
	"prd-coach-api/internal/infrastructure/llm"
	"prd-coach-api/internal/infrastructure/persistence/redis"
	"prd-coach-api/internal/interfaces/http/handler"
	"prd-coach-api/internal/interfaces/http/middleware"
	"prd-coach-api/pkg/logger"
)

// ProvideLLMClient 提供上游补全客户端，缺少凭证时返回配置错误
func ProvideLLMClient(cfg *config.Config) (*llm.Client, error) {
	return llm.NewClient(&cfg.LLM)
}

// ProvideFeedbackRelay 提供章节点评转发器
func ProvideFeedbackRelay(completer llm.Completer, cfg *config.Config) *feedback.Relay {
	return feedback.NewRelay(completer, cfg.LLM.FeedbackTemperature)
}

// ProvideOutlineParser 提供大纲解析器
func ProvideOutlineParser(completer llm.Completer, cfg *config.Config) *outline.Parser {
	return outline.NewParser(completer, cfg.LLM.OutlineMaxTokens)
}

// ProvideRedisClientOptional 未配置 Redis 时返回 nil；配置了但连不上视为启动失败
func ProvideRedisClientOptional(ctx context.Context, cfg *config.Config) (*redis.Client, func(), error) {
	if !cfg.Cache.Redis.Enabled() {
		logger.Info(ctx, "redis not configured, inbound rate limiting disabled")
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(ctx, &cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Error(ctx, "failed to close redis client", err)
		}
	}
	return client, cleanup, nil
}

// ProvideRateLimiter 没有 Redis 时返回 nil，限流中间件随之放行
func ProvideRateLimiter(client *redis.Client) middleware.RateLimiter {
	if client == nil {
		return nil
	}
	return redis.NewRateLimiter(client, "")
}

// ProvideHealthHandler 就绪检查只包含已启用的依赖
func ProvideHealthHandler(cfg *config.Config, client *redis.Client) *handler.HealthHandler {
	checks := map[string]handler.HealthChecker{}
	if client != nil {
		checks["redis"] = client
	}
	return handler.NewHealthHandler(cfg.App.Version, checks)
}
