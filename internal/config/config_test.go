package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"SLACK_CHANNEL_ID", "LLM_PROVIDER", "REPORTS_DIR", "LLM_TEMPERATURE", "REPORT_OPEN_BROWSER"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Slack.ChannelID != DefaultChannelID {
		t.Fatalf("ChannelID = %q, want %q", cfg.Slack.ChannelID, DefaultChannelID)
	}
	if cfg.LLM.Provider != ProviderGroq || cfg.LLM.APIKeyEnv != "GROQ_API_KEY" {
		t.Fatalf("unexpected provider defaults: %+v", cfg.LLM)
	}
	if cfg.LLM.Temperature != 0.2 {
		t.Fatalf("Temperature = %v, want 0.2", cfg.LLM.Temperature)
	}
	if cfg.Report.Dir != "incident_reports" || !cfg.Report.OpenBrowser {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
}

func TestValidateMissing(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "all-missing",
			cfg:  Config{LLM: LLMConfig{APIKeyEnv: "GROQ_API_KEY"}},
			want: []string{"SLACK_BOT_TOKEN", "SLACK_USER_TOKEN", "GROQ_API_KEY"},
		},
		{
			name: "gemini-key-missing",
			cfg: Config{
				Slack: SlackConfig{BotToken: "xoxb", UserToken: "xoxp"},
				LLM:   LLMConfig{APIKeyEnv: "GEMINI_API_KEY"},
			},
			want: []string{"GEMINI_API_KEY"},
		},
		{
			name: "complete",
			cfg: Config{
				Slack: SlackConfig{BotToken: "xoxb", UserToken: "xoxp"},
				LLM:   LLMConfig{APIKey: "key", APIKeyEnv: "GROQ_API_KEY"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.want) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrMissingEnv) {
				t.Fatalf("Validate() = %v, want ErrMissingEnv", err)
			}
			var missingErr *MissingEnvError
			if !errors.As(err, &missingErr) || !reflect.DeepEqual(missingErr.Names, tt.want) {
				t.Fatalf("missing = %v, want %v", missingErr, tt.want)
			}
		})
	}
}

func TestLoadProviderKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("REPORT_OPEN_BROWSER", "false")

	cfg := Load()
	if cfg.LLM.Provider != ProviderGemini || cfg.LLM.APIKey != "g-key" {
		t.Fatalf("unexpected llm config: %+v", cfg.LLM)
	}
	if cfg.Report.OpenBrowser {
		t.Fatalf("expected OpenBrowser=false")
	}
}
