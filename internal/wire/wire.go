//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"prd-coach-api/internal/application/export"
	"prd-coach-api/internal/application/feedback"
	"prd-coach-api/internal/application/outline"
	"prd-coach-api/internal/config"
	"prd-coach-api/internal/infrastructure/llm"
	"prd-coach-api/internal/interfaces/http/handler"
	"prd-coach-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		InfraSet,
		ApplicationSet,
		RouterSet,
	)
	return nil, nil, nil
}

// InfraSet 上游客户端与 Redis
var InfraSet = wire.NewSet(
	ProvideLLMClient,
	wire.Bind(new(llm.Completer), new(*llm.Client)),
	ProvideRedisClientOptional,
	ProvideRateLimiter,
)

// ApplicationSet 应用服务
var ApplicationSet = wire.NewSet(
	ProvideFeedbackRelay,
	ProvideOutlineParser,
	export.NewRenderer,
)

// RouterSet 处理器与路由
var RouterSet = wire.NewSet(
	wire.Bind(new(handler.FeedbackGenerator), new(*feedback.Relay)),
	wire.Bind(new(handler.OutlineParser), new(*outline.Parser)),
	wire.Bind(new(handler.Exporter), new(*export.Renderer)),
	handler.NewFeedbackHandler,
	handler.NewOutlineHandler,
	handler.NewSectionsHandler,
	handler.NewExportHandler,
	ProvideHealthHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
