package transcript

import (
	"regexp"
	"strings"
)

// 적용 순서대로 정의 (mention -> channel -> link -> bold -> italic -> strike -> code)
var markupRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`<@[A-Z0-9]+(?:\|[^>]*)?>`), ""},
	{regexp.MustCompile(`<#[A-Z0-9]+(?:\|[^>]*)?>`), ""},
	{regexp.MustCompile(`<https?://[^>]+>`), ""},
	{regexp.MustCompile(`(?s)\*(.*?)\*`), "$1"},
	{regexp.MustCompile(`(?s)_(.*?)_`), "$1"},
	{regexp.MustCompile(`(?s)~(.*?)~`), "$1"},
	{regexp.MustCompile("(?s)`(.*?)`"), "$1"},
}

var whitespace = regexp.MustCompile(`\s+`)

// 메시지 텍스트에서 Slack 마크업 제거 + 연속 공백 정리
//
// 결과가 더 이상 바뀌지 않을 때까지 반복 적용 (예: "<_@U1_>" 처럼 풀고 나면 새 토큰이 생기는 경우)
func Normalize(text string) string {
	for {
		next := normalizeOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func normalizeOnce(text string) string {
	for _, rule := range markupRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
