// OpenAI 호환 Chat Completions API 클라이언트 (Groq, OpenAI)

package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kube-rca/incident-reporter/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.3-70b-versatile"

	openaiDefaultModel = "gpt-4o-mini"

	ResponseFormatJSONObject = "json_object"
	ResponseFormatJSONSchema = "json_schema"
)

type OpenAIClient struct {
	client         openai.Client
	model          string
	responseFormat string
}

func NewOpenAIClient(cfg config.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing %s", cfg.APIKeyEnv)
	}

	baseURL := cfg.BaseURL
	model := cfg.Model
	if cfg.Provider == config.ProviderGroq {
		if baseURL == "" {
			baseURL = groqBaseURL
		}
		if model == "" {
			model = groqDefaultModel
		}
	}
	if model == "" {
		model = openaiDefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(120 * time.Second), // 긴 쓰레드 분석 시간 고려
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	format := cfg.ResponseFormat
	if format == "" {
		format = ResponseFormatJSONObject
	}

	return &OpenAIClient{
		client:         openai.NewClient(opts...),
		model:          model,
		responseFormat: format,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		Temperature: openai.Float(req.Temperature),
	}

	if c.responseFormat == ResponseFormatJSONSchema && req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	} else {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	slog.DebugContext(ctx, "llm chat completed",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) Model() string {
	return c.model
}
