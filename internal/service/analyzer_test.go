package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kube-rca/incident-reporter/internal/model"
)

func TestIncidentAnalyzerAnalyze(t *testing.T) {
	summarizer := &fakeSummarizer{content: fullAnalysisJSON}
	a := NewIncidentAnalyzer(summarizer, 0.2, false)

	got, err := a.Analyze(context.Background(), "[2025-01-22 15:30:45] Ajay: disk full")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Summary != "Jenkins storage full" || got.Priority != "High" || got.RootCause == "" {
		t.Fatalf("unexpected analysis: %+v", got)
	}

	req := summarizer.req
	if req.Temperature != 0.2 {
		t.Fatalf("Temperature = %v", req.Temperature)
	}
	if req.Schema != nil {
		t.Fatalf("schema should be nil in json_object mode")
	}
	if !strings.Contains(req.UserPrompt, "[2025-01-22 15:30:45] Ajay: disk full") {
		t.Fatalf("transcript missing from user prompt: %q", req.UserPrompt)
	}
	for _, key := range []string{`"priority": one of "High", "Medium", "Low"`, `"status": one of "Resolved", "Investigating", "Monitoring"`, "[YYYY-MM-DD HH:MM:SS]"} {
		if !strings.Contains(req.SystemPrompt, key) {
			t.Errorf("system prompt missing %q", key)
		}
	}
}

func TestIncidentAnalyzerMissingAuthor(t *testing.T) {
	a := NewIncidentAnalyzer(&fakeSummarizer{content: `{"summary":"x","priority":"Low"}`}, 0, false)
	got, err := a.Analyze(context.Background(), "t")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Author != "" || got.Timeline != "" {
		t.Fatalf("expected empty defaults, got %+v", got)
	}
}

func TestIncidentAnalyzerShapeError(t *testing.T) {
	a := NewIncidentAnalyzer(&fakeSummarizer{content: `["not","an","object"]`}, 0, false)
	_, err := a.Analyze(context.Background(), "t")
	if !errors.Is(err, ErrAnalysis) || !errors.Is(err, model.ErrAnalysisShape) {
		t.Fatalf("Analyze() error = %v, want ErrAnalysis wrapping ErrAnalysisShape", err)
	}
}

func TestIncidentAnalyzerStrictSchema(t *testing.T) {
	summarizer := &fakeSummarizer{content: fullAnalysisJSON}
	a := NewIncidentAnalyzer(summarizer, 0.2, true)
	if _, err := a.Analyze(context.Background(), "t"); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if summarizer.req.Schema == nil || summarizer.req.SchemaName != analysisSchemaName {
		t.Fatalf("expected schema in request, got name=%q", summarizer.req.SchemaName)
	}
}
