package feedback

import (
	"regexp"
	"strings"
)

var (
	blankLine   = regexp.MustCompile(`\n[ \t]*\n`)
	quotedSpans = regexp.MustCompile(`"([^"]+)"`)
)

// Point 一条点评：段落全文及其引用的原文
type Point struct {
	Text  string `json:"text"`
	Quote string `json:"quote,omitempty"`
}

// Paragraphs 按空行切分点评文本，丢弃空段
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for _, p := range blankLine.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// QuotedText 返回段落中第一个双引号引用；没有则返回空串
func QuotedText(paragraph string) string {
	m := quotedSpans.FindStringSubmatch(paragraph)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// Points 把点评文本拆成带引用的要点
func Points(text string) []Point {
	paras := Paragraphs(text)
	points := make([]Point, 0, len(paras))
	for _, p := range paras {
		points = append(points, Point{Text: p, Quote: QuotedText(p)})
	}
	return points
}
