package report

import (
	"strings"
	"unicode"
)

// 파일명이 너무 길어지지 않도록 제목 길이 제한 (rune 기준)
const maxTitleRunes = 120

// 제목에서 문자/숫자/공백/-/_ 만 남기고 나머지는 제거
// 끝 공백을 자른 뒤 공백은 _ 로 변환
func SanitizeTitle(title string) string {
	var b strings.Builder
	n := 0
	for _, r := range title {
		if n >= maxTitleRunes {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
			n++
		}
	}
	safe := strings.TrimRightFunc(b.String(), unicode.IsSpace)
	return strings.ReplaceAll(safe, " ", "_")
}

// 확장자를 제외한 파일명: {incident_date}_{sanitized_title}
func BaseName(incidentDate, title string) string {
	return incidentDate + "_" + SanitizeTitle(title)
}
