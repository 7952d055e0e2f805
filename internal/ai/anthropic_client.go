// Package ai provides the remote text-generation client interface and
// implementations.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ohjihoon05/ipswriter/internal/config"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"go.uber.org/zap"
)

// AnthropicClient implements the Client interface using the Anthropic
// Messages API.
type AnthropicClient struct {
	client    anthropic.Client
	config    *config.AIConfig
	prompter  PromptBuilder
	validator ResponseValidator
	logger    *zap.Logger
}

// NewAnthropicClient creates a new Anthropic AI client.
func NewAnthropicClient(cfg *config.AIConfig, prompter PromptBuilder, validator ResponseValidator, logger *zap.Logger) *AnthropicClient {
	return &AnthropicClient{
		client:    anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		config:    cfg,
		prompter:  prompter,
		validator: validator,
		logger:    logger.Named("anthropic_client"),
	}
}

// Generate sends a resolved request to the Anthropic Messages API and
// returns a schema-validated generation result.
func (c *AnthropicClient) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	c.logger.Debug("starting remote generation",
		zap.String("category", string(req.Category)),
		zap.Int("context_length", len(req.Context)),
	)

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: c.prompter.BuildSystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(c.prompter.BuildUserPrompt(req))),
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, domain.WrapError("ai_timeout", domain.ErrAITimeout, true)
		}
		return nil, domain.WrapError("anthropic_request", err, true)
	}

	var content string
	for _, block := range message.Content {
		if block.Type == "text" {
			content = block.Text
			break
		}
	}
	if content == "" {
		return nil, domain.WrapError("empty_response", domain.ErrInvalidAIResponse, false)
	}

	jsonContent := extractJSON(content)
	if jsonContent == "" {
		c.logger.Warn("could not extract JSON from AI response",
			zap.String("content_preview", truncate(content, 200)),
		)
		return nil, domain.WrapError("extract_json", domain.ErrInvalidAIResponse, false)
	}

	var result domain.GenerationResult
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, domain.WrapError("unmarshal_result", domain.ErrInvalidAIResponse, false)
	}

	if err := c.validator.Validate(&result); err != nil {
		return nil, err
	}

	c.logger.Debug("remote generation completed",
		zap.Int64("input_tokens", message.Usage.InputTokens),
		zap.Int64("output_tokens", message.Usage.OutputTokens),
	)

	return &result, nil
}

// HealthCheck verifies the Anthropic API accepts the configured key by
// issuing a minimal request.
func (c *AnthropicClient) HealthCheck(ctx context.Context) error {
	_, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: 1,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("ping")),
		},
	})
	if err != nil {
		return domain.WrapError("health_check", fmt.Errorf("%w: %v", domain.ErrAIUnavailable, err), true)
	}
	return nil
}
