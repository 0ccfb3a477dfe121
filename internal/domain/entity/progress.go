package entity

import "strings"

// ProgressState 章节 ID -> 当前草稿。草稿去除空白后非空即视为完成。
type ProgressState map[string]string

// IsComplete 指定章节是否已完成
func (p ProgressState) IsComplete(id string) bool {
	return strings.TrimSpace(p[id]) != ""
}

// Draft 返回章节草稿
func (p ProgressState) Draft(id string) string {
	return p[id]
}

// ProgressSummary 进度汇总
type ProgressSummary struct {
	Completed int      `json:"completed"`
	Total     int      `json:"total"`
	Percent   int      `json:"percent"`
	Missing   []string `json:"missing"`
}

// Summarize 按章节顺序统计完成情况，未出现在 sections 中的草稿不计入
func (p ProgressState) Summarize(sections []SectionDescriptor) ProgressSummary {
	sum := ProgressSummary{Total: len(sections), Missing: []string{}}
	for _, s := range sections {
		if p.IsComplete(s.ID) {
			sum.Completed++
			continue
		}
		sum.Missing = append(sum.Missing, s.ID)
	}
	if sum.Total > 0 {
		sum.Percent = sum.Completed * 100 / sum.Total
	}
	return sum
}
