package node

import (
	"strings"
	"unicode/utf8"
)

func TruncateByRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// Preview 把模型输出压成单行并截断，用于日志
func Preview(s string, maxRunes int) string {
	flat := strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(flat) <= maxRunes {
		return flat
	}
	return TruncateByRunes(flat, maxRunes) + "…"
}
