package feedback

import (
	"context"
	"strings"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/workflow/prompt"
)

// SystemPrompt 固定的系统指令：引用原文、可执行建议、3-4 点、空行分隔
var SystemPrompt = prompt.MustSystem(prompt.PromptFeedbackV1)

// ContextBlock 渲染想法上下文；可选字段为空时整行省略
func ContextBlock(idea entity.IdeaContext) string {
	if idea.IsRaw() {
		return strings.TrimSpace(idea.Raw)
	}

	lines := []string{"Product Idea: " + strings.TrimSpace(idea.ProductIdea)}
	optional := []struct {
		label string
		value string
	}{
		{"Target Persona", idea.Persona},
		{"Company", idea.Company},
		{"Role", idea.JobDescription},
		{"Custom PRD Structure", idea.CustomOutline},
		{"Purpose", idea.Purpose.Describe()},
	}
	for _, f := range optional {
		if v := strings.TrimSpace(f.value); v != "" {
			lines = append(lines, f.label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}

// Messages 渲染系统与用户消息，content 原样嵌入
func Messages(ctx context.Context, req Request) (prompt.Messages, error) {
	return prompt.Default().Render(ctx, prompt.PromptFeedbackV1, map[string]any{
		"context": ContextBlock(req.Idea),
		"section": req.Section,
		"content": req.Content,
	})
}

// UserPrompt 只返回用户消息
func UserPrompt(ctx context.Context, req Request) (string, error) {
	msgs, err := Messages(ctx, req)
	if err != nil {
		return "", err
	}
	return msgs.User, nil
}
