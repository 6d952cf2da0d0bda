package service

import (
	"context"
	"testing"
	"time"

	"github.com/kube-rca/incident-reporter/internal/model"
)

func TestUserResolverCachesAndFallsBack(t *testing.T) {
	dir := newFakeUserDirectory(map[string]string{"U1": "Ajay"})
	r := NewUserResolver(dir)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if got := r.DisplayName(ctx, "U1"); got != "Ajay" {
			t.Fatalf("DisplayName(U1) = %q", got)
		}
		if got := r.DisplayName(ctx, "U404"); got != "U404" {
			t.Fatalf("DisplayName(U404) = %q, want raw id", got)
		}
	}
	if dir.calls["U1"] != 1 || dir.calls["U404"] != 1 {
		t.Fatalf("lookups = %v, want one per user", dir.calls)
	}
	if got := r.Resolve(ctx, "U404"); got != (model.ResolvedUser{}) {
		t.Fatalf("Resolve(U404) = %+v, want empty record", got)
	}
}

func TestTranscriptFormatterPreservesOrder(t *testing.T) {
	dir := newFakeUserDirectory(map[string]string{"U1": "Ajay", "U2": "Yuga"})
	f := NewTranscriptFormatter(NewUserResolver(dir), time.UTC)

	// API 순서 그대로 (시간 역순, 중복 포함)
	messages := []model.Message{
		{AuthorID: "U2", Timestamp: 1737560000, RawText: "second"},
		{AuthorID: "U1", Timestamp: 1737559845, RawText: "first"},
		{AuthorID: "U2", Timestamp: 1737560000, RawText: "second"},
		{AuthorID: "", Timestamp: 1737560100, RawText: "bot   message"},
	}

	lines := f.Lines(context.Background(), messages)
	if len(lines) != len(messages) {
		t.Fatalf("len(lines) = %d, want %d", len(lines), len(messages))
	}
	wantText := []string{"second", "first", "second", "bot message"}
	wantName := []string{"Yuga", "Ajay", "Yuga", "unknown_user"}
	for i := range lines {
		if lines[i].Text != wantText[i] || lines[i].Name != wantName[i] {
			t.Fatalf("line %d = %+v", i, lines[i])
		}
	}
	if lines[1].Timestamp != "2025-01-22 15:30:45" {
		t.Fatalf("Timestamp = %q", lines[1].Timestamp)
	}
	if got := f.IncidentDate(messages[1]); got != "2025-01-22" {
		t.Fatalf("IncidentDate() = %q", got)
	}
}

func TestTranscriptFormatterLocation(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	f := NewTranscriptFormatter(NewUserResolver(newFakeUserDirectory(nil)), loc)
	msg := model.Message{AuthorID: "U9", Timestamp: 1737559845, RawText: "x"}

	if got := f.Format(context.Background(), []model.Message{msg}); got != "[2025-01-23 00:30:45] U9: x" {
		t.Fatalf("Format() = %q", got)
	}
	if got := f.IncidentDate(msg); got != "2025-01-23" {
		t.Fatalf("IncidentDate() = %q", got)
	}
}
