// 트랜스크립트를 LLM으로 분석하여 IncidentAnalysis 생성
//
// 처리 흐름:
//  1. 고정 system prompt + 트랜스크립트로 LLM 요청 1회 (재시도 없음)
//  2. 응답을 JSON object로 파싱 (실패 시 ErrAnalysis)
//  3. 누락된 key는 빈 문자열로 채움

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kube-rca/incident-reporter/internal/client"
	"github.com/kube-rca/incident-reporter/internal/model"
)

var ErrAnalysis = errors.New("incident analysis failed")

// Summarizer - 프롬프트 한 쌍을 받아 JSON 문자열을 돌려주는 LLM
type Summarizer interface {
	Complete(ctx context.Context, req client.CompletionRequest) (string, error)
}

const analysisSchemaName = "incident_analysis"

const analysisSystemPrompt = `You are an incident response analyst. You receive the transcript of a Slack thread in which an incident was reported and handled, and you turn it into a structured incident report.

Reply with exactly one JSON object and nothing else. Every value in the object must be a JSON string.

Timestamps: every timeline entry must reuse the literal timestamp of the transcript line it describes, in the form [YYYY-MM-DD HH:MM:SS]. Never invent, round or generalize a time.

The object must have exactly these keys:
- "summary": one-line title of the incident
- "author": the person who primarily resolved the issue
- "priority": one of "High", "Medium", "Low"
- "status": one of "Resolved", "Investigating", "Monitoring"
- "description": short description of what happened
- "category": e.g. "Infrastructure", "Application", "Database"
- "environment": e.g. "Production", "Staging"
- "affected_resources": comma-separated list, e.g. "Jenkins, API Server"
- "root_cause_text": the root cause
- "remediation_steps_text": the steps taken to fix the issue
- "impact_text": the impact of the incident
- "timeline_markdown": Markdown bullet list, one event per line, e.g. "- [2025-01-22 15:30:45] - Ajay noticed that storage is full.\n- [2025-01-22 15:32:12] - Yuga cleaned up storage."
- "what_went_well_markdown": Markdown numbered list of what went well
- "what_went_wrong_markdown": Markdown numbered list of what could be improved

Newlines inside values must be escaped as \n.`

// IncidentAnalyzer 구조체 정의
type IncidentAnalyzer struct {
	summarizer  Summarizer
	temperature float64
	schema      any
}

// IncidentAnalyzer 객체 생성
// strictSchema가 true면 JSON schema도 함께 전달 (json_schema 응답 모드)
func NewIncidentAnalyzer(summarizer Summarizer, temperature float64, strictSchema bool) *IncidentAnalyzer {
	a := &IncidentAnalyzer{summarizer: summarizer, temperature: temperature}
	if strictSchema {
		a.schema = client.GenerateSchema[model.IncidentAnalysis]()
	}
	return a
}

func (a *IncidentAnalyzer) Analyze(ctx context.Context, transcript string) (model.IncidentAnalysis, error) {
	slog.InfoContext(ctx, "Analyzing conversation", "transcript_bytes", len(transcript))

	req := client.CompletionRequest{
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   "Here is the Slack thread transcript:\n\n" + transcript,
		Temperature:  a.temperature,
	}
	if a.schema != nil {
		req.SchemaName = analysisSchemaName
		req.Schema = a.schema
	}

	content, err := a.summarizer.Complete(ctx, req)
	if err != nil {
		return model.IncidentAnalysis{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	raw, err := model.ParseAnalysis(content)
	if err != nil {
		return model.IncidentAnalysis{}, fmt.Errorf("%w: %w", ErrAnalysis, err)
	}

	analysis := raw.Analysis()
	slog.InfoContext(ctx, "Analysis complete", "summary", analysis.Summary, "priority", analysis.Priority, "status", analysis.Status)
	return analysis, nil
}
