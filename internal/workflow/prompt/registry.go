// Package prompt 管理内嵌的提示词模板
package prompt

import (
	"context"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	einoobs "prd-coach-api/internal/observability/eino"
)

//go:embed templates/*.txt
var templatesFS embed.FS

var templateVar = regexp.MustCompile(`\{\{\s*\.(\w+)\s*\}\}`)

type PromptID string

const (
	PromptFeedbackV1 PromptID = "feedback_v1"
	PromptOutlineV1  PromptID = "outline_v1"
)

// Messages 渲染后的一对消息
type Messages struct {
	System string
	User   string
}

type entry struct {
	system string
	vars   []string
	tpl    einoprompt.ChatTemplate
}

// Registry 模板按需加载并缓存，可并发使用
type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]*entry
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]*entry),
	}
}

var defaultRegistry = NewRegistry()

// Default 进程级共享的 Registry
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) load(id PromptID) (*entry, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if e, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return e, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.cache[id]; ok {
		return e, nil
	}

	system, err := readEmbeddedText(fmt.Sprintf("templates/%s.system.txt", id))
	if err != nil {
		return nil, fmt.Errorf("unknown prompt id %s: %w", id, err)
	}
	user, err := readEmbeddedText(fmt.Sprintf("templates/%s.user.txt", id))
	if err != nil {
		return nil, fmt.Errorf("unknown prompt id %s: %w", id, err)
	}

	// 用户输入只作为变量值注入，模板语法不会被二次解析
	e := &entry{
		system: system,
		vars:   templateVars(user),
		tpl: einoprompt.FromMessages(
			schema.GoTemplate,
			schema.SystemMessage(system),
			schema.UserMessage(user),
		),
	}
	r.cache[id] = e
	return e, nil
}

// ChatTemplate 返回 eino 聊天模板
func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	e, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return e.tpl, nil
}

// System 返回系统提示词原文
func (r *Registry) System(id PromptID) (string, error) {
	e, err := r.load(id)
	if err != nil {
		return "", err
	}
	return e.system, nil
}

// Render 用 vars 渲染系统与用户消息；缺少变量时报错
func (r *Registry) Render(ctx context.Context, id PromptID, vars map[string]any) (Messages, error) {
	e, err := r.load(id)
	if err != nil {
		return Messages{}, err
	}
	for _, name := range e.vars {
		if _, ok := vars[name]; !ok {
			return Messages{}, fmt.Errorf("prompt %s: missing variable %q", id, name)
		}
	}
	msgs, err := e.tpl.Format(einoobs.WithPrompt(ctx, string(id)), vars)
	if err != nil {
		return Messages{}, fmt.Errorf("format prompt %s: %w", id, err)
	}
	if len(msgs) != 2 {
		return Messages{}, fmt.Errorf("prompt %s rendered %d messages, want 2", id, len(msgs))
	}
	return Messages{System: msgs[0].Content, User: msgs[1].Content}, nil
}

// MustSystem 供包级变量初始化使用
func MustSystem(id PromptID) string {
	s, err := Default().System(id)
	if err != nil {
		panic(err)
	}
	return s
}

func templateVars(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range templateVar.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
