// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// AI service configuration
	AI AIConfig

	// Text generation configuration
	Generation GenerationConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
}

// AIProvider represents the remote AI provider to use.
type AIProvider string

const (
	// AIProviderOpenWebUI uses an OpenAI-compatible chat-completions API.
	AIProviderOpenWebUI AIProvider = "openwebui"

	// AIProviderAnthropic uses the Anthropic Messages API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// AIConfig contains AI service settings.
type AIConfig struct {
	// Provider specifies which AI provider to use (openwebui, anthropic).
	Provider AIProvider

	// APIKey is the authentication key for the AI provider.
	APIKey string

	// BaseURL is the base URL for the AI API (openwebui only).
	BaseURL string

	// Model is the AI model to use.
	Model string

	// Timeout is the maximum time to wait for AI responses.
	Timeout time.Duration

	// MaxTokens is the maximum tokens for AI response.
	MaxTokens int

	// MaxRetries is the number of retries on transient failures.
	MaxRetries int

	// MockMode enables mock responses for testing without API calls.
	MockMode bool
}

// GeneratorMode selects which generation strategy serves requests.
type GeneratorMode string

const (
	// ModeTemplate uses the deterministic local template generator.
	ModeTemplate GeneratorMode = "template"

	// ModeRemote delegates generation to the configured AI provider.
	ModeRemote GeneratorMode = "remote"
)

// GenerationConfig contains text generation settings.
type GenerationConfig struct {
	// Mode selects the generation strategy (template, remote).
	Mode GeneratorMode

	// MaxContextSize is the maximum allowed context size in bytes.
	MaxContextSize int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	provider := AIProvider(getEnvOrDefault("AI_PROVIDER", "openwebui"))

	var defaultBaseURL, defaultModel string
	switch provider {
	case AIProviderAnthropic:
		defaultModel = "claude-sonnet-4-5-20250929"
	default:
		provider = AIProviderOpenWebUI
		defaultBaseURL = "https://api.openwebui.com/v1"
		defaultModel = "gpt-4o-mini"
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		AI: AIConfig{
			Provider:   provider,
			APIKey:     os.Getenv("AI_API_KEY"),
			BaseURL:    getEnvOrDefault("AI_BASE_URL", defaultBaseURL),
			Model:      getEnvOrDefault("AI_MODEL", defaultModel),
			Timeout:    getDurationOrDefault("AI_TIMEOUT", 30*time.Second),
			MaxTokens:  getIntOrDefault("AI_MAX_TOKENS", 1024),
			MaxRetries: getIntOrDefault("AI_MAX_RETRIES", 2),
			MockMode:   getBoolOrDefault("AI_MOCK_MODE", false),
		},
		Generation: GenerationConfig{
			Mode:           GeneratorMode(getEnvOrDefault("GENERATOR_MODE", "template")),
			MaxContextSize: getIntOrDefault("MAX_CONTEXT_SIZE", 2000),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Generation.Mode != ModeTemplate && c.Generation.Mode != ModeRemote {
		return fmt.Errorf("%w: GENERATOR_MODE must be template or remote", domain.ErrInvalidConfig)
	}

	// The API key is only needed when the remote path can actually run.
	if c.Generation.Mode == ModeRemote && !c.AI.MockMode && c.AI.APIKey == "" {
		return fmt.Errorf("%w: AI_API_KEY is required for remote generation", domain.ErrInvalidConfig)
	}

	if c.AI.Timeout < time.Second {
		return fmt.Errorf("%w: AI_TIMEOUT must be at least 1 second", domain.ErrInvalidConfig)
	}

	if c.AI.MaxTokens < 100 {
		return fmt.Errorf("%w: AI_MAX_TOKENS must be at least 100", domain.ErrInvalidConfig)
	}

	if c.Generation.MaxContextSize < 100 {
		return fmt.Errorf("%w: MAX_CONTEXT_SIZE must be at least 100 bytes", domain.ErrInvalidConfig)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		// Plain integers are treated as seconds (e.g., "15").
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
