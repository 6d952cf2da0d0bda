// Package template provides incident report rendering.
//
// 지원하는 변수 형식:
//
//	{{report.title}}, {{report.generated_at}}, {{report.incident_date}}, {{report.body_html}}
//
//	{{cell.summary}}, {{cell.author}}, {{cell.priority}}, {{cell.status}},
//	{{cell.description}}, {{cell.category}}, {{cell.environment}},
//	{{cell.affected_resources}}, {{cell.incident_date}}  (table cell escape 적용)
//
//	{{analysis.root_cause}}, {{analysis.remediation_steps}}, {{analysis.impact}},
//	{{analysis.timeline}}, {{analysis.what_went_well}}, {{analysis.what_went_wrong}}  (원문 그대로)
package template

import (
	"html"
	"strings"
	"time"

	"github.com/kube-rca/incident-reporter/internal/model"
)

const TitlePrefix = "Incident Report: "

// ReportData - 템플릿 렌더링에 사용할 리포트 데이터
type ReportData struct {
	Title        string
	IncidentDate string
	GeneratedAt  time.Time
	Analysis     model.IncidentAnalysis
}

// IncidentAnalysis와 첫 메시지 날짜로 ReportData 생성
func NewReportData(analysis model.IncidentAnalysis, incidentDate string, now time.Time) ReportData {
	return ReportData{
		Title:        TitlePrefix + analysis.Summary,
		IncidentDate: incidentDate,
		GeneratedAt:  now,
		Analysis:     analysis,
	}
}

// Markdown 본문 (key/value 테이블 + 고정 순서 섹션)
const MarkdownBody = `
| | |
| --- | --- |
| **Summary** | {{cell.summary}} |
| **Author** | {{cell.author}} |
| **Priority Level** | {{cell.priority}} |
| **Status** | {{cell.status}} |
| **Description** | {{cell.description}} |
| **Date** | {{cell.incident_date}} |
| **Category** | {{cell.category}} |
| **Environment** | {{cell.environment}} |
| **Affected Resource(s)** | {{cell.affected_resources}} |

### Root Cause:
{{analysis.root_cause}}

### Remediation Steps:
{{analysis.remediation_steps}}

### Timelines:
{{analysis.timeline}}

### Impact:
{{analysis.impact}}

### Lessons Learned:
#### What went well
{{analysis.what_went_well}}

#### What went wrong
{{analysis.what_went_wrong}}
`

// Markdown 파일 상단 header block
const MarkdownHeader = "# {{report.title}}\n\n" +
	"**Generated on:** {{report.generated_at}}  \n" +
	"**Incident Date:** {{report.incident_date}}\n\n"

// RenderBody - body 템플릿의 변수를 실제 값으로 치환
//
// 누락된 분석 필드는 빈 문자열로 치환됩니다.
func RenderBody(body string, data ReportData) string {
	a := data.Analysis
	return strings.NewReplacer(
		"{{report.title}}", data.Title,
		"{{report.generated_at}}", data.GeneratedAt.Format(model.TimestampLayout),
		"{{report.incident_date}}", data.IncidentDate,

		"{{cell.summary}}", tableCell(a.Summary),
		"{{cell.author}}", tableCell(a.Author),
		"{{cell.priority}}", tableCell(a.Priority),
		"{{cell.status}}", tableCell(a.Status),
		"{{cell.description}}", tableCell(a.Description),
		"{{cell.incident_date}}", tableCell(data.IncidentDate),
		"{{cell.category}}", tableCell(a.Category),
		"{{cell.environment}}", tableCell(a.Environment),
		"{{cell.affected_resources}}", tableCell(a.AffectedResources),

		"{{analysis.root_cause}}", a.RootCause,
		"{{analysis.remediation_steps}}", a.RemediationSteps,
		"{{analysis.impact}}", a.Impact,
		"{{analysis.timeline}}", a.Timeline,
		"{{analysis.what_went_well}}", a.WhatWentWell,
		"{{analysis.what_went_wrong}}", a.WhatWentWrong,
	).Replace(body)
}

// header + body 전체 Markdown 문서
func RenderMarkdown(data ReportData) string {
	return RenderBody(MarkdownHeader, data) + RenderBody(MarkdownBody, data)
}

// RenderDocument - HTML 본문을 스타일이 포함된 독립 HTML 문서로 감싼다
func RenderDocument(data ReportData, bodyHTML string) string {
	return strings.NewReplacer(
		"{{report.title}}", html.EscapeString(data.Title),
		"{{report.generated_at}}", data.GeneratedAt.Format(model.TimestampLayout),
		"{{report.incident_date}}", html.EscapeString(data.IncidentDate),
		"{{report.body_html}}", bodyHTML,
	).Replace(htmlDocument)
}

// 테이블 셀 안에서 줄바꿈/파이프가 표를 깨지 않도록 처리
func tableCell(v string) string {
	v = strings.ReplaceAll(v, "\r\n", "\n")
	v = strings.Join(strings.Fields(strings.ReplaceAll(v, "\n", " ")), " ")
	return strings.ReplaceAll(v, "|", `\|`)
}
