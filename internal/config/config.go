// 실행 설정 정의
//
// 환경변수 (.env 파일이 있으면 먼저 로드, 실제 환경변수가 우선):
//   - SLACK_BOT_TOKEN: Slack Bot Token (xoxb-...)
//   - SLACK_USER_TOKEN: Slack User Token (xoxp-...)
//   - SLACK_CHANNEL_ID: 인시던트 쓰레드가 있는 채널 ID (default: C085J2WR1TN)
//   - LLM_PROVIDER: groq | openai | gemini (default: groq)
//   - GROQ_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY: provider별 API Key

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingEnv = errors.New("missing required environment variables")

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultChannelID = "C085J2WR1TN"
)

type Config struct {
	Slack  SlackConfig
	LLM    LLMConfig
	Report ReportConfig
	Log    LogConfig
	Server ServerConfig
}

type SlackConfig struct {
	BotToken  string
	UserToken string
	ChannelID string
	APIURL    string
}

type LLMConfig struct {
	Provider       string
	APIKey         string
	APIKeyEnv      string
	Model          string
	BaseURL        string
	Temperature    float64
	ResponseFormat string // "json_object" or "json_schema"
}

type ReportConfig struct {
	Dir         string
	Timezone    string
	OpenBrowser bool
}

type LogConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	Port string
}

// .env 로드 후 환경변수로 Config 생성
func Load() Config {
	_ = godotenv.Load()

	provider := strings.ToLower(getenv("LLM_PROVIDER", ProviderGroq))
	keyEnv := apiKeyEnv(provider)

	return Config{
		Slack: SlackConfig{
			BotToken:  os.Getenv("SLACK_BOT_TOKEN"),
			UserToken: os.Getenv("SLACK_USER_TOKEN"),
			ChannelID: getenv("SLACK_CHANNEL_ID", DefaultChannelID),
			APIURL:    getenv("SLACK_API_URL", "https://slack.com/api/"),
		},
		LLM: LLMConfig{
			Provider:       provider,
			APIKey:         os.Getenv(keyEnv),
			APIKeyEnv:      keyEnv,
			Model:          os.Getenv("LLM_MODEL"),
			BaseURL:        os.Getenv("LLM_BASE_URL"),
			Temperature:    getfloat("LLM_TEMPERATURE", 0.2),
			ResponseFormat: getenv("LLM_RESPONSE_FORMAT", "json_object"),
		},
		Report: ReportConfig{
			Dir:         getenv("REPORTS_DIR", "incident_reports"),
			Timezone:    getenv("REPORT_TIMEZONE", "Local"),
			OpenBrowser: getbool("REPORT_OPEN_BROWSER", true),
		},
		Log: LogConfig{
			Level:  getenv("LOG_LEVEL", "info"),
			Format: getenv("LOG_FORMAT", "text"),
		},
		Server: ServerConfig{
			Port: getenv("SERVER_PORT", "8080"),
		},
	}
}

// 누락된 필수 환경변수 이름 목록 반환 (없으면 nil)
func (c Config) Missing() []string {
	var missing []string
	if c.Slack.BotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if c.Slack.UserToken == "" {
		missing = append(missing, "SLACK_USER_TOKEN")
	}
	if c.LLM.APIKey == "" {
		missing = append(missing, c.LLM.APIKeyEnv)
	}
	return missing
}

// 필수 환경변수가 모두 설정되어 있는지 체크
func (c Config) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return &MissingEnvError{Names: missing}
	}
	return nil
}

// MissingEnvError는 errors.Is(err, ErrMissingEnv)로 판별 가능
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	return "Missing required environment variables: " + strings.Join(e.Names, ", ")
}

func (e *MissingEnvError) Unwrap() error {
	return ErrMissingEnv
}

func apiKeyEnv(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "GROQ_API_KEY"
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getfloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}
