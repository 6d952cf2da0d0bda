// Slack 쓰레드에서 가져온 메시지와 트랜스크립트 구조체 정의
// client, transcript, service 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의

package model

import (
	"fmt"
	"math"
	"time"
)

// 트랜스크립트/파일명에 사용하는 시간 포맷
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Message - 쓰레드 내 개별 메시지 (루트 메시지 포함)
// 가져온 이후에는 변경하지 않음
type Message struct {
	AuthorID string

	// Timestamp: Slack ts (epoch seconds, 소수점 이하 microseconds)
	Timestamp float64

	RawText string
}

// Slack ts를 time.Time으로 변환
func (m Message) Time() time.Time {
	sec, frac := math.Modf(m.Timestamp)
	return time.Unix(int64(sec), int64(math.Round(frac*1e6))*int64(time.Microsecond))
}

// ResolvedUser - users.info 조회 결과
// 조회 실패 시 빈 값(DisplayName == "")
type ResolvedUser struct {
	ID          string
	DisplayName string
}

// TranscriptLine - 트랜스크립트 한 줄
type TranscriptLine struct {
	Timestamp string // YYYY-MM-DD HH:MM:SS
	Name      string
	Text      string
}

func (l TranscriptLine) String() string {
	return fmt.Sprintf("[%s] %s: %s", l.Timestamp, l.Name, l.Text)
}
