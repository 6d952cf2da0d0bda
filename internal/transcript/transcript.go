package transcript

import (
	"strings"

	"github.com/kube-rca/incident-reporter/internal/model"
)

// 트랜스크립트 줄을 입력 순서 그대로 한 줄씩 연결
func Join(lines []model.TranscriptLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.String()
	}
	return strings.Join(out, "\n")
}
