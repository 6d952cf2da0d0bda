package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrAnalysisShape = errors.New("analysis response is not a JSON object")

// IncidentAnalysis - LLM이 반환하는 인시던트 분석 결과
// 모든 값은 문자열이며, 누락된 key는 빈 문자열로 채움
type IncidentAnalysis struct {
	Summary           string `json:"summary"`
	Author            string `json:"author" jsonschema:"description=Primary person who resolved the issue"`
	Priority          string `json:"priority" jsonschema:"enum=High,enum=Medium,enum=Low"`
	Status            string `json:"status" jsonschema:"enum=Resolved,enum=Investigating,enum=Monitoring"`
	Description       string `json:"description"`
	Category          string `json:"category" jsonschema:"description=e.g. Infrastructure, Application, Database"`
	Environment       string `json:"environment" jsonschema:"description=e.g. Production, Staging"`
	AffectedResources string `json:"affected_resources" jsonschema:"description=Comma-separated list"`
	RootCause         string `json:"root_cause_text"`
	RemediationSteps  string `json:"remediation_steps_text"`
	Impact            string `json:"impact_text"`
	Timeline          string `json:"timeline_markdown" jsonschema:"description=Markdown bullet list using the exact transcript timestamps"`
	WhatWentWell      string `json:"what_went_well_markdown" jsonschema:"description=Markdown numbered list"`
	WhatWentWrong     string `json:"what_went_wrong_markdown" jsonschema:"description=Markdown numbered list"`
}

// RawAnalysis - 파싱만 끝난 LLM 응답 (key -> raw JSON value)
// Analysis()로 기본값을 채운 IncidentAnalysis를 얻는다
type RawAnalysis map[string]json.RawMessage

// 필드별로 허용하는 key 목록 (prompt에서 요구한 key가 먼저)
var analysisKeys = []struct {
	keys []string
	set  func(*IncidentAnalysis, string)
}{
	{[]string{"summary"}, func(a *IncidentAnalysis, v string) { a.Summary = v }},
	{[]string{"author"}, func(a *IncidentAnalysis, v string) { a.Author = v }},
	{[]string{"priority"}, func(a *IncidentAnalysis, v string) { a.Priority = v }},
	{[]string{"status"}, func(a *IncidentAnalysis, v string) { a.Status = v }},
	{[]string{"description"}, func(a *IncidentAnalysis, v string) { a.Description = v }},
	{[]string{"category"}, func(a *IncidentAnalysis, v string) { a.Category = v }},
	{[]string{"environment"}, func(a *IncidentAnalysis, v string) { a.Environment = v }},
	{[]string{"affected_resources"}, func(a *IncidentAnalysis, v string) { a.AffectedResources = v }},
	{[]string{"root_cause_text", "root_cause"}, func(a *IncidentAnalysis, v string) { a.RootCause = v }},
	{[]string{"remediation_steps_text", "remediation_steps"}, func(a *IncidentAnalysis, v string) { a.RemediationSteps = v }},
	{[]string{"impact_text", "impact"}, func(a *IncidentAnalysis, v string) { a.Impact = v }},
	{[]string{"timeline_markdown", "timeline"}, func(a *IncidentAnalysis, v string) { a.Timeline = v }},
	{[]string{"what_went_well_markdown", "what_went_well"}, func(a *IncidentAnalysis, v string) { a.WhatWentWell = v }},
	{[]string{"what_went_wrong_markdown", "what_went_wrong"}, func(a *IncidentAnalysis, v string) { a.WhatWentWrong = v }},
}

// LLM 응답 본문을 JSON object로 파싱
// object가 아니면 ErrAnalysisShape
func ParseAnalysis(content string) (RawAnalysis, error) {
	body := bytes.TrimSpace([]byte(stripCodeFence(content)))
	if len(body) == 0 || body[0] != '{' {
		return nil, fmt.Errorf("%w: %s", ErrAnalysisShape, preview(content))
	}

	var raw RawAnalysis
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisShape, err)
	}
	return raw, nil
}

// 누락된 key는 빈 문자열, 문자열이 아닌 값은 문자열로 변환
func (r RawAnalysis) Analysis() IncidentAnalysis {
	var a IncidentAnalysis
	for _, field := range analysisKeys {
		for _, key := range field.keys {
			if value, ok := r[key]; ok {
				field.set(&a, coerceString(value))
				break
			}
		}
	}
	return a
}

func coerceString(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}

	var list []any
	if err := json.Unmarshal(value, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				parts = append(parts, str)
				continue
			}
			b, _ := json.Marshal(item)
			parts = append(parts, string(b))
		}
		return strings.Join(parts, "\n")
	}

	trimmed := strings.TrimSpace(string(value))
	if trimmed == "null" {
		return ""
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return trimmed
}

// ```json ... ``` 로 감싸진 응답 처리
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}

func preview(s string) string {
	const max = 80
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
