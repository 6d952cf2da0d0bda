// 외부 Slack Web API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - SLACK_BOT_TOKEN: Slack Bot Token (xoxb-...)
//   - SLACK_API_URL: Slack API base URL (테스트에서 httptest 서버로 교체)
//
// 사용하는 API:
//   - conversations.replies: 쓰레드 전체 메시지 조회 (루트 메시지 포함, cursor 페이지네이션)
//   - users.info: 작성자 ID -> 표시 이름

package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/kube-rca/incident-reporter/internal/config"
	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/slack-go/slack"
)

// conversations.replies 한 페이지 최대 메시지 수
const repliesPageSize = 200

// SlackClient 구조체 정의
type SlackClient struct {
	api       *slack.Client
	botToken  string
	channelID string
}

// SlackClient 객체 생성
func NewSlackClient(cfg config.SlackConfig) *SlackClient {
	opts := []slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: 10 * time.Second}),
	}
	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(withTrailingSlash(cfg.APIURL)))
	}

	return &SlackClient{
		api:       slack.New(cfg.BotToken, opts...),
		botToken:  cfg.BotToken,
		channelID: cfg.ChannelID,
	}
}

// 설정된 채널 ID 반환
func (c *SlackClient) ChannelID() string {
	return c.channelID
}

// 쓰레드의 모든 메시지를 API가 반환한 순서대로 조회
// ok:false 응답이나 네트워크 오류는 그대로 반환 (재시도 없음)
func (c *SlackClient) FetchThread(ctx context.Context, channelID, threadTS string) ([]model.Message, error) {
	if c.botToken == "" {
		return nil, fmt.Errorf("slack bot token not configured")
	}

	params := &slack.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     repliesPageSize,
	}

	var messages []model.Message
	for first := true; ; first = false {
		page, hasMore, nextCursor, err := c.api.GetConversationRepliesContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("slack API error: %w", err)
		}
		for _, msg := range page {
			// 두 번째 페이지부터 루트 메시지가 다시 포함될 수 있음
			if !first && msg.Timestamp == threadTS {
				continue
			}
			messages = append(messages, toMessage(msg))
		}
		if !hasMore || nextCursor == "" {
			break
		}
		params.Cursor = nextCursor
	}

	return messages, nil
}

// users.info 조회
func (c *SlackClient) LookupUser(ctx context.Context, userID string) (model.ResolvedUser, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return model.ResolvedUser{}, fmt.Errorf("slack users.info %s: %w", userID, err)
	}

	// real_name -> display_name -> name 순으로 사용
	name := user.RealName
	if name == "" {
		name = user.Profile.DisplayName
	}
	if name == "" {
		name = user.Name
	}
	return model.ResolvedUser{ID: user.ID, DisplayName: name}, nil
}

func toMessage(msg slack.Message) model.Message {
	// ts 파싱 실패 시 0 (epoch)
	ts, _ := strconv.ParseFloat(msg.Timestamp, 64)
	return model.Message{
		AuthorID:  msg.User,
		Timestamp: ts,
		RawText:   msg.Text,
	}
}

func withTrailingSlash(url string) string {
	if url[len(url)-1] != '/' {
		return url + "/"
	}
	return url
}
