package entity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Purpose 用户撰写 PRD 的目的
type Purpose string

const (
	PurposeRecruiting  Purpose = "recruiting"
	PurposeDeliverable Purpose = "deliverable"
)

// Valid 是否为已知目的
func (p Purpose) Valid() bool {
	switch p {
	case PurposeRecruiting, PurposeDeliverable:
		return true
	default:
		return false
	}
}

// Describe 返回用于提示词的人类可读描述；未知的非空取值原样返回
func (p Purpose) Describe() string {
	switch p {
	case PurposeRecruiting:
		return "recruiting (portfolio piece for a product role application)"
	case PurposeDeliverable:
		return "deliverable (a PRD that will be handed to a real team)"
	default:
		return strings.TrimSpace(string(p))
	}
}

// IdeaContext 用户的产品想法及可选上下文，会话内创建后不再修改。
// 线上格式既可以是对象，也可以是一段纯文本（Raw 非空时整体作为上下文使用）。
type IdeaContext struct {
	ProductIdea    string  `json:"productIdea" yaml:"productIdea"`
	Persona        string  `json:"persona,omitempty" yaml:"persona,omitempty"`
	Company        string  `json:"company,omitempty" yaml:"company,omitempty"`
	JobDescription string  `json:"jobDescription,omitempty" yaml:"jobDescription,omitempty"`
	CustomOutline  string  `json:"customOutline,omitempty" yaml:"customOutline,omitempty"`
	Purpose        Purpose `json:"purpose,omitempty" yaml:"purpose,omitempty"`

	Raw string `json:"-" yaml:"-"`
}

// ideaContextFields 避免 UnmarshalJSON 递归
type ideaContextFields IdeaContext

// UnmarshalJSON 兼容字符串形式的上下文
func (c *IdeaContext) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = IdeaContext{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = IdeaContext{Raw: s}
		return nil
	}
	var f ideaContextFields
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*c = IdeaContext(f)
	return nil
}

// MarshalJSON 字符串形式的上下文原样输出
func (c IdeaContext) MarshalJSON() ([]byte, error) {
	if c.Raw != "" {
		return json.Marshal(c.Raw)
	}
	return json.Marshal(ideaContextFields(c))
}

// IsRaw 是否为纯文本上下文
func (c IdeaContext) IsRaw() bool {
	return c.Raw != ""
}

// Title 返回用于导出标题的文本
func (c IdeaContext) Title() string {
	if c.IsRaw() {
		return firstLine(c.Raw)
	}
	return firstLine(c.ProductIdea)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
