package service

import (
	"context"
	"time"

	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/kube-rca/incident-reporter/internal/transcript"
)

// 작성자 ID가 없는 메시지 (bot, 시스템 메시지 등)
const unknownUser = "unknown_user"

// TranscriptFormatter - 메시지 목록을 "[timestamp] name: text" 트랜스크립트로 변환
// 메시지 순서는 그대로 유지 (정렬, 중복 제거 없음)
type TranscriptFormatter struct {
	users    *UserResolver
	location *time.Location
}

func NewTranscriptFormatter(users *UserResolver, location *time.Location) *TranscriptFormatter {
	if location == nil {
		location = time.Local
	}
	return &TranscriptFormatter{users: users, location: location}
}

func (f *TranscriptFormatter) Lines(ctx context.Context, messages []model.Message) []model.TranscriptLine {
	lines := make([]model.TranscriptLine, 0, len(messages))
	for _, msg := range messages {
		name := unknownUser
		if msg.AuthorID != "" {
			name = f.users.DisplayName(ctx, msg.AuthorID)
		}
		lines = append(lines, model.TranscriptLine{
			Timestamp: msg.Time().In(f.location).Format(model.TimestampLayout),
			Name:      name,
			Text:      transcript.Normalize(msg.RawText),
		})
	}
	return lines
}

func (f *TranscriptFormatter) Format(ctx context.Context, messages []model.Message) string {
	return transcript.Join(f.Lines(ctx, messages))
}

// 첫 메시지(루트) 기준 인시던트 날짜 (YYYY-MM-DD)
func (f *TranscriptFormatter) IncidentDate(first model.Message) string {
	return first.Time().In(f.location).Format(model.DateLayout)
}
