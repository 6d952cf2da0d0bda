// 리포트 파일 기록
//
// 출력:
//   - {REPORTS_DIR}/{incident_date}_{sanitized_title}.md
//   - {REPORTS_DIR}/{incident_date}_{sanitized_title}.html
//
// 같은 이름의 파일은 덮어씀. md/html 기록은 서로 독립적으로 시도

package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kube-rca/incident-reporter/internal/model"
)

var ErrWrite = errors.New("failed to write report")

type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// md/html 파일 기록
// 한쪽이 실패해도 나머지는 계속 시도하고, 기록하지 못한 쪽의 경로는 빈 문자열
func (w *Writer) Write(r model.Report) (model.ReportFiles, error) {
	var files model.ReportFiles

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return files, fmt.Errorf("%w: create reports dir %s: %v", ErrWrite, w.dir, err)
	}

	base := filepath.Join(w.dir, BaseName(r.IncidentDate, r.Title))
	mdPath := base + ".md"
	htmlPath := base + ".html"

	var errs []error
	if err := os.WriteFile(mdPath, []byte(r.Markdown), 0o644); err != nil {
		slog.Error("Error creating markdown report", "path", mdPath, "error", err)
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrWrite, mdPath, err))
	} else {
		slog.Info("Successfully created markdown report", "path", mdPath)
		files.MarkdownPath = mdPath
	}

	if err := os.WriteFile(htmlPath, []byte(r.HTML), 0o644); err != nil {
		slog.Error("Error creating HTML report", "path", htmlPath, "error", err)
		errs = append(errs, fmt.Errorf("%w: %s: %v", ErrWrite, htmlPath, err))
	} else {
		slog.Info("Successfully created HTML report", "path", htmlPath)
		files.HTMLPath = htmlPath
	}

	return files, errors.Join(errs...)
}
