package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/pkg/browser"
)

// PostProcessor - 리포트 파일 기록 이후 실행되는 후처리
// 실패는 호출 측에서 로그만 남기고 실행 결과에는 영향 없음
type PostProcessor interface {
	Name() string
	Process(ctx context.Context, r model.Report, files model.ReportFiles) error
}

// 기본 브라우저로 HTML 리포트 열기
type BrowserOpener struct {
	open func(path string) error
}

func NewBrowserOpener() *BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserOpener{open: browser.OpenFile}
}

func (b *BrowserOpener) Name() string { return "browser" }

func (b *BrowserOpener) Process(_ context.Context, _ model.Report, files model.ReportFiles) error {
	if files.HTMLPath == "" {
		return fmt.Errorf("no HTML report to open")
	}
	abs, err := filepath.Abs(files.HTMLPath)
	if err != nil {
		return err
	}
	return b.open(abs)
}

// 터미널에 Markdown 리포트 미리보기 출력 (glamour)
type TerminalPreview struct {
	out      io.Writer
	style    string // "auto" 또는 glamour 기본 스타일 이름
	wordWrap int
}

func NewTerminalPreview(out io.Writer) *TerminalPreview {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalPreview{out: out, style: "auto", wordWrap: 100}
}

func (p *TerminalPreview) WithStyle(style string) *TerminalPreview {
	p.style = style
	return p
}

func (p *TerminalPreview) Name() string { return "preview" }

func (p *TerminalPreview) Process(_ context.Context, r model.Report, _ model.ReportFiles) error {
	styleOpt := glamour.WithAutoStyle()
	if p.style != "" && p.style != "auto" {
		styleOpt = glamour.WithStandardStyle(p.style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(p.wordWrap))
	if err != nil {
		return fmt.Errorf("create terminal renderer: %w", err)
	}
	out, err := renderer.Render(r.Markdown)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	_, err = io.WriteString(p.out, out)
	return err
}
