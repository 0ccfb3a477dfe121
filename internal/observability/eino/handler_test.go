package eino

import (
	"context"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

func TestPromptFromContext(t *testing.T) {
	assert.Equal(t, "unknown", PromptFromContext(context.Background()))
	assert.Equal(t, "feedback_v1", PromptFromContext(WithPrompt(context.Background(), "feedback_v1")))
}

func TestPromptCallbackHandlerLifecycle(t *testing.T) {
	h := newPromptCallbackHandler()
	ctx := WithPrompt(context.Background(), "outline_v1")

	ctx = h.OnStart(ctx, nil, &prompt.CallbackInput{Variables: map[string]any{"outline": "x"}})
	start, ok := ctx.Value(startTimeKey{}).(time.Time)
	assert.True(t, ok)
	assert.False(t, start.IsZero())

	assert.NotPanics(t, func() {
		h.OnEnd(ctx, nil, &prompt.CallbackOutput{Result: []*schema.Message{schema.UserMessage("hello")}})
	})
}

func TestElapsedSecondsWithoutStart(t *testing.T) {
	assert.Zero(t, elapsedSeconds(context.Background()))
}
