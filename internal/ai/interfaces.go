// Package ai provides the remote text-generation client interface and
// implementations. The remote path is an untrusted, fallible external
// collaborator: every implementation returns an error rather than a
// partial result, and the service layer converts failures into a
// labeled four-language error result.
package ai

import (
	"context"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// Client defines the interface for AI service interactions.
// This interface allows for easy mocking and swapping of AI providers.
type Client interface {
	// Generate sends a resolved generation request to the AI service
	// and returns a schema-validated result. The request's category,
	// safety level, and unit must already be resolved by the caller.
	// The context carries timeout and cancellation signals.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)

	// HealthCheck verifies the AI service is reachable.
	HealthCheck(ctx context.Context) error
}

// PromptBuilder defines the interface for constructing AI prompts.
type PromptBuilder interface {
	// BuildSystemPrompt returns the system prompt describing the
	// guideline rules.
	BuildSystemPrompt() string

	// BuildUserPrompt constructs the user prompt from the resolved
	// request parameters.
	BuildUserPrompt(req domain.GenerationRequest) string
}

// ResponseValidator defines the interface for validating AI responses.
type ResponseValidator interface {
	// Validate checks if the AI response conforms to the expected schema.
	Validate(result *domain.GenerationResult) error
}
