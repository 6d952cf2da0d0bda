package model

import "time"

// Report - 렌더링된 인시던트 리포트
// 파일로 기록된 이후에는 메모리에 남기지 않음
type Report struct {
	Title        string
	IncidentDate string
	GeneratedAt  time.Time
	Markdown     string // header + body
	HTML         string // full document
}

// ReportFiles - 실제로 기록된 파일 경로 (실패한 쪽은 빈 문자열)
type ReportFiles struct {
	MarkdownPath string
	HTMLPath     string
}

// 리포트 뷰어 목록 출력용 구조체
type ReportFileInfo struct {
	Name       string    `json:"name"`
	Format     string    `json:"format"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	URL        string    `json:"url"`
}
