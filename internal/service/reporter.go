// 인시던트 리포트 생성 파이프라인
//
// 처리 흐름 (순차 실행, 외부 API 호출은 각각 최대 1회):
//  1. ThreadSource로 쓰레드 메시지 조회 (실패 시 중단)
//  2. 첫 메시지 timestamp로 incident_date 결정
//  3. 작성자 이름 조회 + 마크업 제거 -> 트랜스크립트
//  4. IncidentAnalyzer로 분석 (실패 시 중단)
//  5. Markdown/HTML 렌더링 후 파일 기록
//  6. PostProcessor 실행 (브라우저 열기 등, 실패해도 무시)

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/kube-rca/incident-reporter/internal/report"
	"github.com/kube-rca/incident-reporter/internal/template"
)

var (
	ErrThreadFetch = errors.New("failed to fetch slack thread")
	ErrEmptyThread = errors.New("slack thread has no messages")
)

// ThreadSource - 채널 ID + 쓰레드 timestamp로 메시지 목록 조회
type ThreadSource interface {
	FetchThread(ctx context.Context, channelID, threadTS string) ([]model.Message, error)
}

// ReportWriter - 렌더링된 리포트를 파일로 기록
type ReportWriter interface {
	Write(r model.Report) (model.ReportFiles, error)
}

// ReportResult - 실행 결과
type ReportResult struct {
	Report   model.Report
	Files    model.ReportFiles
	Analysis model.IncidentAnalysis
}

// Reporter 구조체 정의
type Reporter struct {
	threads   ThreadSource
	formatter *TranscriptFormatter
	analyzer  *IncidentAnalyzer
	renderer  *report.Renderer
	writer    ReportWriter
	post      []report.PostProcessor
	now       func() time.Time
}

// Reporter 객체 생성
func NewReporter(threads ThreadSource, formatter *TranscriptFormatter, analyzer *IncidentAnalyzer, renderer *report.Renderer, writer ReportWriter) *Reporter {
	return &Reporter{
		threads:   threads,
		formatter: formatter,
		analyzer:  analyzer,
		renderer:  renderer,
		writer:    writer,
		now:       time.Now,
	}
}

// 파일 기록 이후 실행할 PostProcessor 추가
func (r *Reporter) AddPostProcessor(p report.PostProcessor) {
	r.post = append(r.post, p)
}

func (r *Reporter) Run(ctx context.Context, channelID, threadTS string) (*ReportResult, error) {
	// 1. 쓰레드 조회
	slog.InfoContext(ctx, "Fetching Slack thread", "channel_id", channelID, "thread_ts", threadTS)
	messages, err := r.threads.FetchThread(ctx, channelID, threadTS)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrThreadFetch, err)
	}
	if len(messages) == 0 {
		return nil, ErrEmptyThread
	}
	slog.InfoContext(ctx, "Successfully fetched thread", "messages", len(messages))

	// 2. incident_date (루트 메시지 기준)
	incidentDate := r.formatter.IncidentDate(messages[0])

	// 3. 트랜스크립트
	conversation := r.formatter.Format(ctx, messages)

	// 4. 분석
	analysis, err := r.analyzer.Analyze(ctx, conversation)
	if err != nil {
		return nil, err
	}

	// 5. 렌더링 + 파일 기록
	slog.InfoContext(ctx, "Creating local incident report")
	rendered, err := r.renderer.Render(template.NewReportData(analysis, incidentDate, r.now().In(r.formatter.location)))
	if err != nil {
		return nil, err
	}

	files, err := r.writer.Write(rendered)
	if err != nil {
		if files.MarkdownPath == "" && files.HTMLPath == "" {
			return nil, err
		}
		// 한쪽이라도 기록되었으면 계속 진행
		slog.WarnContext(ctx, "Report partially written", "error", err)
	}

	// 6. 후처리 (실패해도 실행 결과에는 영향 없음)
	for _, p := range r.post {
		if err := p.Process(ctx, rendered, files); err != nil {
			slog.WarnContext(ctx, "Post-processing failed", "step", p.Name(), "error", err)
		}
	}

	return &ReportResult{Report: rendered, Files: files, Analysis: analysis}, nil
}
