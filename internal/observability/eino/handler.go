package eino

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components/prompt"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"prd-coach-api/pkg/metrics"
)

type startTimeKey struct{}

type promptIDKey struct{}

// WithPrompt 在 Context 中标记当前渲染的模板 ID
func WithPrompt(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, promptIDKey{}, id)
}

// PromptFromContext 未标记时返回 "unknown"
func PromptFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(promptIDKey{}).(string); ok && id != "" {
		return id
	}
	return "unknown"
}

// newPromptCallbackHandler 模板渲染的回调：计数、耗时、渲染长度、追踪 span
func newPromptCallbackHandler() *cbtemplate.PromptCallbackHandler {
	return &cbtemplate.PromptCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *prompt.CallbackInput) context.Context {
			ctx = context.WithValue(ctx, startTimeKey{}, time.Now())

			attrs := []attribute.KeyValue{
				attribute.String("prompt.id", PromptFromContext(ctx)),
			}
			if input != nil {
				attrs = append(attrs, attribute.Int("prompt.variables", len(input.Variables)))
			}
			if info != nil {
				attrs = append(attrs, attribute.String("eino.type", info.Type))
			}

			ctx, _ = otel.Tracer("eino").Start(ctx, "prompt.format", trace.WithAttributes(attrs...))
			return ctx
		},

		OnEnd: func(ctx context.Context, _ *einocb.RunInfo, output *prompt.CallbackOutput) context.Context {
			id := PromptFromContext(ctx)
			metrics.PromptRenderTotal.WithLabelValues(id, "ok").Inc()
			if d := elapsedSeconds(ctx); d > 0 {
				metrics.PromptRenderDuration.WithLabelValues(id).Observe(d)
			}

			chars := 0
			if output != nil {
				for _, m := range output.Result {
					if m != nil {
						chars += len(m.Content)
					}
				}
			}
			metrics.PromptRenderedChars.WithLabelValues(id).Observe(float64(chars))

			span := trace.SpanFromContext(ctx)
			span.SetAttributes(attribute.Int("prompt.rendered_chars", chars))
			span.End()
			return ctx
		},

		OnError: func(ctx context.Context, _ *einocb.RunInfo, err error) context.Context {
			id := PromptFromContext(ctx)
			metrics.PromptRenderTotal.WithLabelValues(id, "error").Inc()

			span := trace.SpanFromContext(ctx)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			return ctx
		},
	}
}

// elapsedSeconds 取不到开始时间时返回 0
func elapsedSeconds(ctx context.Context) float64 {
	start, ok := ctx.Value(startTimeKey{}).(time.Time)
	if !ok || start.IsZero() {
		return 0
	}
	return time.Since(start).Seconds()
}
