package template

import (
	"strings"
	"testing"
	"time"

	"github.com/kube-rca/incident-reporter/internal/model"
)

func testData() ReportData {
	return NewReportData(model.IncidentAnalysis{
		Summary:           "Jenkins disk full",
		Author:            "Yuga",
		Priority:          "High",
		Status:            "Resolved",
		Description:       "Builds failed | queue stuck\nfor an hour",
		RootCause:         "Old build logs filled /var.",
		RemediationSteps:  "Cleaned workspace.",
		Timeline:          "- [2025-01-22 15:30:45] - Ajay noticed storage is full.",
		WhatWentWell:      "1. Fast detection",
		WhatWentWrong:     "1. No disk alert",
		AffectedResources: "Jenkins",
	}, "2025-01-22", time.Date(2025, 1, 23, 9, 0, 0, 0, time.UTC))
}

func TestRenderMarkdown(t *testing.T) {
	md := RenderMarkdown(testData())

	for _, want := range []string{
		"# Incident Report: Jenkins disk full\n",
		"**Generated on:** 2025-01-23 09:00:00  \n",
		"**Incident Date:** 2025-01-22\n",
		"| **Summary** | Jenkins disk full |",
		"| **Author** | Yuga |",
		"| **Priority Level** | High |",
		"| **Date** | 2025-01-22 |",
		"| **Description** | Builds failed \\| queue stuck for an hour |",
		"### Root Cause:\nOld build logs filled /var.\n",
		"### Timelines:\n- [2025-01-22 15:30:45] - Ajay noticed storage is full.\n",
		"#### What went wrong\n1. No disk alert\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n---\n%s", want, md)
		}
	}

	order := []string{"### Root Cause:", "### Remediation Steps:", "### Timelines:", "### Impact:", "### Lessons Learned:", "#### What went well", "#### What went wrong"}
	last := -1
	for _, section := range order {
		i := strings.Index(md, section)
		if i <= last {
			t.Fatalf("section %q out of order", section)
		}
		last = i
	}
}

func TestRenderBodyMissingFields(t *testing.T) {
	data := NewReportData(model.IncidentAnalysis{Summary: "x"}, "2025-01-22", time.Now())
	md := RenderBody(MarkdownBody, data)
	if !strings.Contains(md, "| **Author** |  |") {
		t.Fatalf("expected empty author cell:\n%s", md)
	}
	if strings.Contains(md, "{{") {
		t.Fatalf("unreplaced placeholder:\n%s", md)
	}
}

func TestRenderBodyDoesNotExpandValues(t *testing.T) {
	data := NewReportData(model.IncidentAnalysis{RootCause: "{{cell.summary}}", Summary: "s"}, "d", time.Now())
	md := RenderBody(MarkdownBody, data)
	if !strings.Contains(md, "### Root Cause:\n{{cell.summary}}\n") {
		t.Fatalf("value was re-expanded:\n%s", md)
	}
}

func TestRenderDocumentEscapesTitle(t *testing.T) {
	data := testData()
	data.Title = "Incident Report: <script>alert(1)</script>"
	doc := RenderDocument(data, "<p>body</p>")

	if strings.Contains(doc, "<script>") {
		t.Fatalf("title not escaped")
	}
	if !strings.Contains(doc, "<title>Incident Report: &lt;script&gt;alert(1)&lt;/script&gt;</title>") {
		t.Fatalf("unexpected title in document")
	}
	if !strings.Contains(doc, "<p>body</p>") || !strings.Contains(doc, "<style>") {
		t.Fatalf("document missing body or inline stylesheet")
	}
	if strings.Contains(doc, "<link") || strings.Contains(doc, "<script src") {
		t.Fatalf("document references external assets")
	}
}
