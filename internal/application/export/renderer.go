// Package export 把草稿整理为完整的 PRD 文档
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"prd-coach-api/internal/domain/entity"
	apperrors "prd-coach-api/pkg/errors"
)

const untitled = "Untitled Product"

// Document 导出结果
type Document struct {
	Markdown string                 `json:"markdown"`
	HTML     string                 `json:"html"`
	Progress entity.ProgressSummary `json:"progress"`
}

// Renderer PRD 渲染器，可并发使用
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer 创建渲染器。原始 HTML 会被转义，草稿按纯 Markdown 处理。
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render 按章节顺序输出 Markdown 与 HTML；sections 为空时使用内置章节
func (r *Renderer) Render(idea entity.IdeaContext, sections []entity.SectionDescriptor, progress entity.ProgressState) (*Document, error) {
	if len(sections) == 0 {
		sections = entity.DefaultSections()
	}

	md := Markdown(idea, sections, progress)
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(md), &buf); err != nil {
		return nil, apperrors.ErrExportFailed.WithError(err)
	}

	return &Document{
		Markdown: md,
		HTML:     buf.String(),
		Progress: progress.Summarize(sections),
	}, nil
}

// Markdown 生成导出的 Markdown 文本
func Markdown(idea entity.IdeaContext, sections []entity.SectionDescriptor, progress entity.ProgressState) string {
	var b strings.Builder

	title := idea.Title()
	if title == "" {
		title = untitled
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if meta := metaLines(idea); len(meta) > 0 {
		for _, line := range meta {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		if progress.IsComplete(s.ID) {
			b.WriteString(strings.TrimSpace(progress.Draft(s.ID)))
		} else {
			fmt.Fprintf(&b, "_Not yet written: %s_", strings.TrimSpace(s.Description))
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func metaLines(idea entity.IdeaContext) []string {
	if idea.IsRaw() {
		return nil
	}
	fields := []struct {
		label string
		value string
	}{
		{"Target Persona", idea.Persona},
		{"Company", idea.Company},
		{"Role", idea.JobDescription},
		{"Purpose", idea.Purpose.Describe()},
	}
	var lines []string
	for _, f := range fields {
		if v := strings.TrimSpace(f.value); v != "" {
			lines = append(lines, fmt.Sprintf("**%s:** %s", f.label, v))
		}
	}
	return lines
}
