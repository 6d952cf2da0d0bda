package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown -> HTML fragment 변환 (goldmark, table/strikethrough 확장)
// 입력에 포함된 raw HTML은 그대로 출력하지 않음
type HTMLConverter struct {
	md goldmark.Markdown
}

func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{
		md: goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
	}
}

func (c *HTMLConverter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
