// Package entity 定义 PRD 指导流程的领域实体
package entity

import (
	"strconv"
	"strings"
	"unicode"
)

// Link 章节的学习资料链接
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// SectionDescriptor PRD 章节描述
type SectionDescriptor struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Example     string `json:"example" yaml:"example"`
	Links       []Link `json:"links" yaml:"links"`
}

// Slugify 把标题转换为小写、连字符分隔的稳定 ID
// 例如 "Goals & Success Metrics" -> "goals-success-metrics"
func Slugify(title string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// NormalizeSectionIDs 为缺失 ID 的章节按标题生成 ID，并给重复 ID 追加序号后缀。
// 已经合法的列表原样返回。
func NormalizeSectionIDs(sections []SectionDescriptor) []SectionDescriptor {
	seen := make(map[string]int, len(sections))
	for i := range sections {
		id := strings.TrimSpace(sections[i].ID)
		if id == "" {
			id = Slugify(sections[i].Title)
		}
		if id == "" {
			id = "section"
		}
		base := id
		for seen[id] > 0 {
			seen[base]++
			id = base + "-" + strconv.Itoa(seen[base])
		}
		seen[id] = 1
		sections[i].ID = id
	}
	return sections
}

// SectionIDs 返回章节 ID 列表，保持顺序
func SectionIDs(sections []SectionDescriptor) []string {
	ids := make([]string, 0, len(sections))
	for _, s := range sections {
		ids = append(ids, s.ID)
	}
	return ids
}
