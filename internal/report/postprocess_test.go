package report

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kube-rca/incident-reporter/internal/model"
)

func TestBrowserOpenerUsesAbsolutePath(t *testing.T) {
	var opened string
	b := &BrowserOpener{open: func(path string) error {
		opened = path
		return nil
	}}

	if err := b.Process(context.Background(), model.Report{}, model.ReportFiles{HTMLPath: "incident_reports/a.html"}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !filepath.IsAbs(opened) || !strings.HasSuffix(opened, filepath.Join("incident_reports", "a.html")) {
		t.Fatalf("opened = %q", opened)
	}
}

func TestBrowserOpenerWithoutHTML(t *testing.T) {
	b := &BrowserOpener{open: func(string) error { return nil }}
	if err := b.Process(context.Background(), model.Report{}, model.ReportFiles{}); err == nil {
		t.Fatalf("expected error when HTML report is missing")
	}
}

func TestTerminalPreview(t *testing.T) {
	var buf bytes.Buffer
	p := NewTerminalPreview(&buf).WithStyle("notty")

	err := p.Process(context.Background(), model.Report{Markdown: "# Incident Report: DB outage\n\nroot cause text"}, model.ReportFiles{})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.Contains(buf.String(), "root cause text") {
		t.Fatalf("preview output = %q", buf.String())
	}
}
