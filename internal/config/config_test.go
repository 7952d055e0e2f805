// Package config provides unit tests for configuration loading.
package config

import (
	"errors"
	"testing"
	"time"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "AI_PROVIDER", "AI_MODEL", "GENERATOR_MODE", "MAX_CONTEXT_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.AI.Provider != AIProviderOpenWebUI {
		t.Errorf("Provider = %q, want openwebui", cfg.AI.Provider)
	}
	if cfg.AI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.AI.Model)
	}
	if cfg.Generation.Mode != ModeTemplate {
		t.Errorf("Mode = %q, want template", cfg.Generation.Mode)
	}
	if cfg.Generation.MaxContextSize != 2000 {
		t.Errorf("MaxContextSize = %d, want 2000", cfg.Generation.MaxContextSize)
	}
}

func TestLoad_AnthropicProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("AI_API_KEY", "test-key")
	t.Setenv("AI_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AI.Provider != AIProviderAnthropic {
		t.Errorf("Provider = %q, want anthropic", cfg.AI.Provider)
	}
	if cfg.AI.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("Model = %q, want anthropic default model", cfg.AI.Model)
	}
	if cfg.AI.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty for anthropic", cfg.AI.BaseURL)
	}
}

func TestLoad_UnknownProviderFallsBack(t *testing.T) {
	t.Setenv("AI_PROVIDER", "something-else")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Provider != AIProviderOpenWebUI {
		t.Errorf("Provider = %q, want openwebui fallback", cfg.AI.Provider)
	}
}

func TestLoad_DurationFormats(t *testing.T) {
	t.Setenv("AI_TIMEOUT", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.AI.Timeout)
	}

	t.Setenv("AI_TIMEOUT", "2m")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.AI.Timeout)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			AI: AIConfig{
				Provider:  AIProviderOpenWebUI,
				Timeout:   30 * time.Second,
				MaxTokens: 1024,
			},
			Generation: GenerationConfig{
				Mode:           ModeTemplate,
				MaxContextSize: 2000,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "template mode needs no key",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "remote mode without key",
			mutate: func(c *Config) {
				c.Generation.Mode = ModeRemote
			},
			wantErr: true,
		},
		{
			name: "remote mode with key",
			mutate: func(c *Config) {
				c.Generation.Mode = ModeRemote
				c.AI.APIKey = "key"
			},
			wantErr: false,
		},
		{
			name: "remote mock mode without key",
			mutate: func(c *Config) {
				c.Generation.Mode = ModeRemote
				c.AI.MockMode = true
			},
			wantErr: false,
		},
		{
			name: "unknown generator mode",
			mutate: func(c *Config) {
				c.Generation.Mode = "hybrid"
			},
			wantErr: true,
		},
		{
			name: "sub-second timeout",
			mutate: func(c *Config) {
				c.AI.Timeout = 500 * time.Millisecond
			},
			wantErr: true,
		},
		{
			name: "tiny token limit",
			mutate: func(c *Config) {
				c.AI.MaxTokens = 10
			},
			wantErr: true,
		},
		{
			name: "tiny context limit",
			mutate: func(c *Config) {
				c.Generation.MaxContextSize = 10
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("error = %v, want wrapped ErrInvalidConfig", err)
			}
		})
	}
}
