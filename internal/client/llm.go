// LLM provider 클라이언트 공통 정의
//
// 환경변수:
//   - LLM_PROVIDER: groq (default) | openai | gemini
//   - LLM_MODEL: 모델 이름 (미설정 시 provider 기본값)
//   - LLM_BASE_URL: OpenAI 호환 API base URL
//
// 모든 provider는 JSON 전용 응답 모드를 사용하고 재시도하지 않음

package client

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/kube-rca/incident-reporter/internal/config"
)

// CompletionRequest - system/user 프롬프트 한 쌍으로 구성된 단일 요청
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64

	// json_schema 모드에서만 사용
	SchemaName string
	Schema     any
}

// LLMClient - 요청 한 번에 응답 본문(JSON 문자열) 하나
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// provider 설정에 맞는 LLMClient 생성
func NewLLMClient(ctx context.Context, cfg config.LLMConfig) (LLMClient, error) {
	switch cfg.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		c, err := NewOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.ProviderGemini:
		c, err := NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", cfg.Provider)
	}
}

// strict structured output용 JSON schema 생성
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
