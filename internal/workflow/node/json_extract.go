// Package node 提供处理模型输出文本的通用工具
package node

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// fencePattern 匹配 ``` 或 ```json 代码块，非贪婪，取内部内容
var fencePattern = regexp.MustCompile("(?s)```[ \t]*(?:[jJ][sS][oO][nN])?[ \t]*\\r?\\n?(.*?)```")

// ExtractJSONObject 从模型输出中截取 JSON 对象。
// 用 json.Decoder 做真正的括号平衡扫描，字符串里的花括号不会干扰结果。
// 代码块内的候选优先；同一区域内有多个顶层对象时取最长的一个。
func ExtractJSONObject(s string) (string, bool) {
	cands := JSONObjectCandidates(s)
	if len(cands) == 0 {
		return "", false
	}
	return cands[0], true
}

// JSONObjectCandidates 按优先级返回所有候选对象：
// 先是各代码块内最长的对象，再是全文顶层对象（由长到短）。
// 围栏标记落在某个顶层对象内部时，说明它只是字符串里的反引号，该代码块被忽略。
func JSONObjectCandidates(s string) []string {
	spans := objectSpans(s)

	var out []string
	seen := make(map[string]bool)
	add := func(obj string) {
		if obj != "" && !seen[obj] {
			seen[obj] = true
			out = append(out, obj)
		}
	}

	for _, m := range fencePattern.FindAllStringSubmatchIndex(s, -1) {
		if insideAny(spans, m[0]) || insideAny(spans, m[1]-len("```")) {
			continue
		}
		if obj, ok := largestObject(s[m[2]:m[3]]); ok {
			add(obj)
		}
	}

	whole := make([]span, len(spans))
	copy(whole, spans)
	sort.SliceStable(whole, func(i, j int) bool {
		return whole[i].end-whole[i].start > whole[j].end-whole[j].start
	})
	for _, sp := range whole {
		add(s[sp.start:sp.end])
	}
	return out
}

// FencedBlocks 返回所有 markdown 代码块的内部文本，按出现顺序
func FencedBlocks(s string) []string {
	matches := fencePattern.FindAllStringSubmatch(s, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}

type span struct {
	start, end int
}

func insideAny(spans []span, pos int) bool {
	for _, sp := range spans {
		if sp.start < pos && pos < sp.end {
			return true
		}
	}
	return false
}

// objectSpans 依次从每个 '{' 尝试解码一个完整对象，
// 成功后跳过该对象继续扫描，返回所有顶层对象的位置
func objectSpans(s string) []span {
	var spans []span
	for i := 0; i < len(s); {
		j := strings.IndexByte(s[i:], '{')
		if j < 0 {
			break
		}
		start := i + j
		obj, ok := decodeObjectAt(s, start)
		if !ok {
			i = start + 1
			continue
		}
		spans = append(spans, span{start: start, end: start + len(obj)})
		i = start + len(obj)
	}
	return spans
}

// largestObject 返回最长的顶层对象
func largestObject(s string) (string, bool) {
	best := ""
	for _, sp := range objectSpans(s) {
		if sp.end-sp.start > len(best) {
			best = s[sp.start:sp.end]
		}
	}
	return best, best != ""
}

func decodeObjectAt(s string, start int) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(s[start:]))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return "", false
	}
	if len(raw) == 0 || raw[0] != '{' {
		return "", false
	}
	return s[start : start+len(raw)], true
}

// DecodeJSONObject 抽取并解码到 v；找不到对象或解码失败都返回 false
func DecodeJSONObject(s string, v any) bool {
	obj, ok := ExtractJSONObject(s)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(obj), v) == nil
}
