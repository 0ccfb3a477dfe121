// Package outline 把用户自定义的 PRD 大纲交给上游模型整理为章节列表
package outline

import (
	"context"
	"encoding/json"
	"strings"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/infrastructure/llm"
	"prd-coach-api/internal/workflow/node"
	"prd-coach-api/internal/workflow/prompt"
	apperrors "prd-coach-api/pkg/errors"
	"prd-coach-api/pkg/logger"
	"prd-coach-api/pkg/metrics"
)

// DefaultMaxTokens 单次解析的输出上限
const DefaultMaxTokens = 2000

// 日志中原始回复的预览长度
const previewRunes = 500

// SystemPrompt 要求模型只返回 {"sections": [...]} 对象
var SystemPrompt = prompt.MustSystem(prompt.PromptOutlineV1)

// Messages 渲染系统与用户消息
func Messages(ctx context.Context, outline string) (prompt.Messages, error) {
	return prompt.Default().Render(ctx, prompt.PromptOutlineV1, map[string]any{"outline": outline})
}

// Parser 大纲解析器。任何失败都降级为空列表，不向调用方报错。
type Parser struct {
	completer llm.Completer
	maxTokens int
}

// NewParser 创建解析器；maxTokens <= 0 时使用默认值
func NewParser(completer llm.Completer, maxTokens int) *Parser {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Parser{completer: completer, maxTokens: maxTokens}
}

// Parse 返回解析出的章节，永不为 nil
func (p *Parser) Parse(ctx context.Context, outline string) []entity.SectionDescriptor {
	if strings.TrimSpace(outline) == "" {
		metrics.OutlineParseTotal.WithLabelValues("empty_input").Inc()
		return []entity.SectionDescriptor{}
	}

	logger.Info(ctx, "parsing custom outline", "outline_chars", len(outline))

	msgs, err := Messages(ctx, outline)
	if err != nil {
		metrics.OutlineParseTotal.WithLabelValues("prompt_error").Inc()
		logger.Error(ctx, "failed to render outline prompt", err)
		return []entity.SectionDescriptor{}
	}

	reply, err := p.completer.Complete(ctx, llm.CompletionRequest{
		Operation:           "outline",
		System:              msgs.System,
		User:                msgs.User,
		MaxCompletionTokens: llm.Int(p.maxTokens),
	})
	if err != nil {
		metrics.OutlineParseTotal.WithLabelValues("upstream_error").Inc()
		if upErr, ok := llm.AsUpstreamError(err); ok {
			logger.Error(ctx, "outline upstream call failed", err, "status", upErr.StatusCode, "body", node.Preview(upErr.Body, previewRunes))
		} else {
			logger.Error(ctx, "outline upstream call failed", err)
		}
		return []entity.SectionDescriptor{}
	}

	sections, err := DecodeSections(reply)
	if err != nil {
		metrics.OutlineParseTotal.WithLabelValues("malformed").Inc()
		logger.Warn(ctx, "failed to parse outline reply as JSON", "error", err.Error(), "reply", node.Preview(reply, previewRunes))
		return []entity.SectionDescriptor{}
	}

	metrics.OutlineParseTotal.WithLabelValues("parsed").Inc()
	metrics.OutlineSections.Observe(float64(len(sections)))
	logger.Info(ctx, "outline parsed", "sections", len(sections))
	return sections
}

type sectionsEnvelope struct {
	Sections *[]entity.SectionDescriptor `json:"sections"`
}

// DecodeSections 从模型回复中提取 {"sections": [...]}。
// 按优先级逐个尝试候选对象（代码块优先，其次全文），取第一个合法的；
// 缺少 sections 键、章节既无 id 也无 title 时视为格式错误。
func DecodeSections(reply string) ([]entity.SectionDescriptor, error) {
	cands := node.JSONObjectCandidates(reply)
	if len(cands) == 0 {
		return nil, apperrors.ErrOutlineMalformed.WithDetail("no JSON object in reply")
	}

	var firstErr error
	for _, raw := range cands {
		sections, err := decodeEnvelope(raw)
		if err == nil {
			return sections, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func decodeEnvelope(raw string) ([]entity.SectionDescriptor, error) {
	var env sectionsEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, apperrors.ErrOutlineMalformed.WithError(err)
	}
	if env.Sections == nil {
		return nil, apperrors.ErrOutlineMalformed.WithDetail(`missing "sections" array`)
	}

	sections := *env.Sections
	for i := range sections {
		if strings.TrimSpace(sections[i].ID) == "" && strings.TrimSpace(sections[i].Title) == "" {
			return nil, apperrors.ErrOutlineMalformed.WithDetail("section without id or title")
		}
		if sections[i].Links == nil {
			sections[i].Links = []entity.Link{}
		}
	}
	return entity.NormalizeSectionIDs(sections), nil
}
