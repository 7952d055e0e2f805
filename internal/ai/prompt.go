// Package ai provides the remote text-generation client interface and
// implementations.
package ai

import (
	"bytes"
	"text/template"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// DefaultPromptBuilder implements PromptBuilder with templated prompts.
type DefaultPromptBuilder struct {
	systemPrompt string
	userTemplate *template.Template
}

// systemPromptText carries the full guideline digest. This prompt is
// versioned as code and can be reviewed and tested.
const systemPromptText = `You are an expert in semiconductor equipment UX writing following Wonik IPS guidelines.

Core Principles:
1. Accuracy (정확성) - Use precise values with proper units
2. Safety (안전성) - Prioritize safety with clear warnings
3. Immediate Comprehensibility (즉시 이해 가능성) - Use clear, unambiguous language
4. Consistency (일관성) - Follow standard terminology
5. Hierarchical Information Structure (계층적 정보 구조) - Structure information logically

Prohibited expressions: 적절한, 적당한, 조금, 약간, 잠시, 나중에, 가능하면, 대략, 정도, 쯤

Units to use:
- Temperature: °C
- Pressure: Torr
- Flow: sccm
- Power: W
- Voltage: V
- Current: A
- Time: s
- RPM: RPM

Safety icons:
- Critical: 🚨
- Danger: 🔴
- Warning: ⚠️
- Blocked: 🚫

For alerts:
- Include specific action verbs (Stop, Vent, Check, Close)
- Show current value and exceeded limit
- State immediate consequence

Generate text in 4 languages: English, Korean, Chinese, Japanese.

CRITICAL: You MUST respond with ONLY valid JSON matching the exact schema provided. No markdown, no explanations, just the JSON object.`

// userPromptTemplate presents the resolved request parameters.
const userPromptTemplate = `Generate UX text for:
Component Type: {{.Category}}
Context: {{.Context}}
{{- if .SafetyLevel}}
Safety Level: {{.SafetyLevel}}
{{- end}}
{{- if .Unit}}
Unit: {{.Unit}}
{{- end}}
{{- if .Value}}
Value: {{.Value}}
{{- end}}
{{- if .UsageStyle}}
Usage Type: {{.UsageStyle}}
{{- end}}

Format your response as JSON:
{
  "text": "...",
  "textKo": "...",
  "textZh": "...",
  "textJa": "...",
  "explanation": "...",
  "explanationKo": "...",
  "explanationZh": "...",
  "explanationJa": "...",
  "appliedRules": ["rule1", "rule2"]
}

Respond with ONLY the JSON object, no additional text.`

// NewDefaultPromptBuilder creates a new prompt builder with default templates.
func NewDefaultPromptBuilder() (*DefaultPromptBuilder, error) {
	tmpl, err := template.New("user_prompt").Parse(userPromptTemplate)
	if err != nil {
		return nil, err
	}

	return &DefaultPromptBuilder{
		systemPrompt: systemPromptText,
		userTemplate: tmpl,
	}, nil
}

// BuildSystemPrompt returns the system prompt.
func (p *DefaultPromptBuilder) BuildSystemPrompt() string {
	return p.systemPrompt
}

// BuildUserPrompt constructs the user prompt from the resolved request.
func (p *DefaultPromptBuilder) BuildUserPrompt(req domain.GenerationRequest) string {
	var buf bytes.Buffer
	if err := p.userTemplate.Execute(&buf, req); err != nil {
		// Fallback to a minimal format if the template fails.
		return "Generate guideline-conforming UX text as JSON for: " + req.Context
	}
	return buf.String()
}
