package service

import (
	"context"
	"log/slog"

	"github.com/kube-rca/incident-reporter/internal/model"
)

// UserDirectory - 작성자 ID로 사용자 정보 조회 (Slack users.info)
type UserDirectory interface {
	LookupUser(ctx context.Context, userID string) (model.ResolvedUser, error)
}

// UserResolver는 실행 한 번 동안 작성자별로 한 번만 조회한다.
// 조회 실패는 경고만 남기고 빈 레코드를 사용 (실패 결과도 캐시)
type UserResolver struct {
	directory UserDirectory
	cache     map[string]model.ResolvedUser
}

func NewUserResolver(directory UserDirectory) *UserResolver {
	return &UserResolver{
		directory: directory,
		cache:     make(map[string]model.ResolvedUser),
	}
}

func (r *UserResolver) Resolve(ctx context.Context, userID string) model.ResolvedUser {
	if user, ok := r.cache[userID]; ok {
		return user
	}

	user, err := r.directory.LookupUser(ctx, userID)
	if err != nil {
		slog.WarnContext(ctx, "Could not fetch user", "user_id", userID, "error", err)
		user = model.ResolvedUser{}
	}
	r.cache[userID] = user
	return user
}

// 표시 이름, 없으면 원래 ID
func (r *UserResolver) DisplayName(ctx context.Context, userID string) string {
	if user := r.Resolve(ctx, userID); user.DisplayName != "" {
		return user.DisplayName
	}
	return userID
}
