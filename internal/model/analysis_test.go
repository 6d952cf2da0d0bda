package model

import (
	"errors"
	"testing"
)

func TestParseAnalysisMissingAuthor(t *testing.T) {
	raw, err := ParseAnalysis(`{"summary":"DB outage","priority":"High","status":"Resolved"}`)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	a := raw.Analysis()
	if a.Author != "" {
		t.Fatalf("Author = %q, want empty", a.Author)
	}
	if a.Summary != "DB outage" || a.Priority != "High" || a.Status != "Resolved" {
		t.Fatalf("unexpected analysis: %+v", a)
	}
}

func TestParseAnalysisShapeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"plain-text", "Sure! Here is your report."},
		{"array", `["summary"]`},
		{"truncated", `{"summary": "db`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAnalysis(tt.content); !errors.Is(err, ErrAnalysisShape) {
				t.Fatalf("ParseAnalysis(%q) error = %v, want ErrAnalysisShape", tt.content, err)
			}
		})
	}
}

func TestAnalysisCoercion(t *testing.T) {
	content := "```json\n" + `{
		"summary": "Jenkins disk full",
		"root_cause": "logs filled /var",
		"timeline_markdown": ["- [2025-01-22 15:30:45] - disk full", "- [2025-01-22 15:32:12] - cleaned"],
		"impact_text": null,
		"affected_resources": 3,
		"what_went_well_markdown": "1. fast response"
	}` + "\n```"

	raw, err := ParseAnalysis(content)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	a := raw.Analysis()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"alias-key", a.RootCause, "logs filled /var"},
		{"array-joined", a.Timeline, "- [2025-01-22 15:30:45] - disk full\n- [2025-01-22 15:32:12] - cleaned"},
		{"null", a.Impact, ""},
		{"number", a.AffectedResources, "3"},
		{"string", a.WhatWentWell, "1. fast response"},
		{"absent", a.WhatWentWrong, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestParseAnalysisPrefersWireKey(t *testing.T) {
	raw, err := ParseAnalysis(`{"root_cause_text":"wire","root_cause":"alias"}`)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	if got := raw.Analysis().RootCause; got != "wire" {
		t.Fatalf("RootCause = %q, want wire", got)
	}
}
