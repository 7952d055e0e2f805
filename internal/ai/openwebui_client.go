// Package ai provides the remote text-generation client interface and
// implementations.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ohjihoon05/ipswriter/internal/config"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"go.uber.org/zap"
)

// OpenWebUIClient implements the Client interface against an
// OpenAI-compatible chat-completions API.
type OpenWebUIClient struct {
	config     *config.AIConfig
	httpClient *http.Client
	prompter   PromptBuilder
	validator  ResponseValidator
	logger     *zap.Logger
}

// Chat-completions request/response structures.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenWebUIClient creates a new OpenAI-compatible AI client.
func NewOpenWebUIClient(cfg *config.AIConfig, prompter PromptBuilder, validator ResponseValidator, logger *zap.Logger) *OpenWebUIClient {
	return &OpenWebUIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		prompter:  prompter,
		validator: validator,
		logger:    logger.Named("openwebui_client"),
	}
}

// Generate sends a resolved request to the AI service and returns a
// schema-validated generation result.
func (c *OpenWebUIClient) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	startTime := time.Now()
	c.logger.Debug("starting remote generation",
		zap.String("category", string(req.Category)),
		zap.Int("context_length", len(req.Context)),
	)

	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: c.prompter.BuildSystemPrompt()},
			{Role: "user", Content: c.prompter.BuildUserPrompt(req)},
		},
		MaxTokens: c.config.MaxTokens,
		// Low temperature keeps output close to the guideline wording.
		Temperature: 0.3,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, domain.WrapError("marshal_request", err, false)
	}

	var result *domain.GenerationResult
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			c.logger.Debug("retrying remote generation",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, domain.WrapError("context_cancelled", ctx.Err(), false)
			case <-time.After(backoff):
			}
		}

		result, lastErr = c.executeRequest(ctx, jsonBody)
		if lastErr == nil {
			break
		}

		if !domain.IsRetryable(lastErr) {
			break
		}
	}

	if lastErr != nil {
		return nil, lastErr
	}

	c.logger.Debug("remote generation completed",
		zap.Duration("duration", time.Since(startTime)),
	)

	return result, nil
}

// executeRequest performs a single HTTP request to the AI service.
func (c *OpenWebUIClient) executeRequest(ctx context.Context, jsonBody []byte) (*domain.GenerationResult, error) {
	url := fmt.Sprintf("%s/chat/completions", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, domain.WrapError("create_request", err, false)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.WrapError("ai_timeout", domain.ErrAITimeout, true)
		}
		return nil, domain.WrapError("http_request", err, true)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError("read_response", err, true)
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, domain.WrapError("rate_limit", domain.ErrRateLimited, true)
		}
		if resp.StatusCode >= 500 {
			return nil, domain.WrapError("ai_unavailable", domain.ErrAIUnavailable, true)
		}
		return nil, domain.WrapError("ai_error",
			fmt.Errorf("AI API returned status %d: %s", resp.StatusCode, string(body)), false)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, domain.WrapError("parse_response", err, false)
	}

	if chatResp.Error != nil {
		return nil, domain.WrapError("ai_api_error",
			fmt.Errorf("%s: %s", chatResp.Error.Type, chatResp.Error.Message), false)
	}

	if len(chatResp.Choices) == 0 {
		return nil, domain.WrapError("empty_response", domain.ErrInvalidAIResponse, false)
	}

	content := chatResp.Choices[0].Message.Content
	result, err := c.parseGenerationResult(content)
	if err != nil {
		return nil, err
	}

	if err := c.validator.Validate(result); err != nil {
		return nil, err
	}

	return result, nil
}

// parseGenerationResult extracts the GenerationResult from the AI
// response content.
func (c *OpenWebUIClient) parseGenerationResult(content string) (*domain.GenerationResult, error) {
	var result domain.GenerationResult

	// The AI might wrap the JSON in markdown code fences.
	jsonContent := extractJSON(content)
	if jsonContent == "" {
		c.logger.Warn("could not extract JSON from AI response",
			zap.String("content_preview", truncate(content, 200)),
		)
		return nil, domain.WrapError("extract_json", domain.ErrInvalidAIResponse, false)
	}

	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		c.logger.Warn("failed to unmarshal AI response",
			zap.Error(err),
			zap.String("json_content", truncate(jsonContent, 200)),
		)
		return nil, domain.WrapError("unmarshal_result", domain.ErrInvalidAIResponse, false)
	}

	return &result, nil
}

// HealthCheck verifies the AI service is reachable.
func (c *OpenWebUIClient) HealthCheck(ctx context.Context) error {
	url := fmt.Sprintf("%s/models", c.config.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError("health_check", domain.ErrAIUnavailable, true)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WrapError("health_check", domain.ErrAIUnavailable, true)
	}

	return nil
}

// Helper functions

// extractJSON attempts to extract JSON from content that might include
// markdown fencing or surrounding prose.
func extractJSON(content string) string {
	if isValidJSON(content) {
		return content
	}

	start := -1
	for i, c := range content {
		if c == '{' {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}

	depth := 0
	end := -1
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return ""
	}

	extracted := content[start:end]
	if isValidJSON(extracted) {
		return extracted
	}

	return ""
}

func isValidJSON(s string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(s), &js) == nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
