package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kube-rca/incident-reporter/internal/model"
)

var (
	ErrInvalidReportName = errors.New("invalid report name")
	ErrReportNotFound    = errors.New("report not found")
)

// ReportCatalog - reports 디렉터리에 기록된 리포트 조회 (뷰어용, 읽기 전용)
type ReportCatalog struct {
	dir string
}

func NewReportCatalog(dir string) *ReportCatalog {
	return &ReportCatalog{dir: dir}
}

// .md/.html 파일 목록 (최근 수정 순)
// 디렉터리가 아직 없으면 빈 목록
func (c *ReportCatalog) List() ([]model.ReportFileInfo, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.ReportFileInfo{}, nil
		}
		return nil, fmt.Errorf("failed to read reports dir: %w", err)
	}

	files := make([]model.ReportFileInfo, 0, len(entries))
	for _, entry := range entries {
		format, ok := reportFormat(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, model.ReportFileInfo{
			Name:       entry.Name(),
			Format:     format,
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
			URL:        "/reports/" + entry.Name(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

// 이름을 reports 디렉터리 내부 경로로 변환 (디렉터리 밖 접근 차단)
func (c *ReportCatalog) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportName, name)
	}
	if _, ok := reportFormat(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportName, name)
	}

	path := filepath.Join(c.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrReportNotFound, name)
	}
	return path, nil
}

func reportFormat(name string) (string, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md":
		return "markdown", true
	case ".html":
		return "html", true
	default:
		return "", false
	}
}
