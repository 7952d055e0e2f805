// Package ai provides the remote text-generation client interface and
// implementations.
package ai

import (
	"fmt"
	"strings"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// DefaultValidator implements ResponseValidator with strict schema checks.
type DefaultValidator struct{}

// NewDefaultValidator creates a new response validator.
func NewDefaultValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// Validate checks if the AI response conforms to the expected schema:
// four non-empty text fields, four explanation fields, and at least one
// applied rule. The never-empty text invariant is enforced here so the
// remote path can never hand blank strings to the presentation layer.
func (v *DefaultValidator) Validate(result *domain.GenerationResult) error {
	if result == nil {
		return domain.WrapError("validate",
			fmt.Errorf("result is nil"), false)
	}

	texts := map[string]string{
		"text":   result.Text,
		"textKo": result.TextKo,
		"textZh": result.TextZh,
		"textJa": result.TextJa,
	}
	for field, text := range texts {
		if strings.TrimSpace(text) == "" {
			return domain.WrapError("validate_text",
				fmt.Errorf("%w: %s is empty", domain.ErrInvalidAIResponse, field), false)
		}
	}

	explanations := map[string]string{
		"explanation":   result.Explanation,
		"explanationKo": result.ExplanationKo,
		"explanationZh": result.ExplanationZh,
		"explanationJa": result.ExplanationJa,
	}
	for field, text := range explanations {
		if strings.TrimSpace(text) == "" {
			return domain.WrapError("validate_explanation",
				fmt.Errorf("%w: %s is empty", domain.ErrInvalidAIResponse, field), false)
		}
	}

	if len(result.AppliedRules) == 0 {
		return domain.WrapError("validate_applied_rules",
			fmt.Errorf("%w: at least one applied rule is required", domain.ErrInvalidAIResponse), false)
	}
	for i, rule := range result.AppliedRules {
		if rule == "" {
			return domain.WrapError("validate_applied_rules",
				fmt.Errorf("%w: appliedRules[%d] is empty", domain.ErrInvalidAIResponse, i), false)
		}
	}

	return nil
}
