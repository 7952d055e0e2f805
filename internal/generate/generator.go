// Package generate produces localized UI text from generation requests
// using deterministic, category-specific templates. Generation cannot
// fail: every branch has a default and the result text is never empty.
package generate

import (
	"strings"

	"github.com/ohjihoon05/ipswriter/internal/classify"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/guideline"
)

// localized is a four-language text quad. Numbers and unit symbols are
// never translated, so value renderings are identical across fields.
type localized struct {
	en, ko, zh, ja string
}

// branchResult is what each category branch produces before safety
// seeding and the non-empty guarantee are applied.
type branchResult struct {
	text        localized
	explanation localized
	rules       []string
}

// TemplateGenerator is the deterministic local text generator.
// It is stateless and safe for concurrent use.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a new template generator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate resolves missing request fields via the classifier and
// renders four-language text for the resolved category.
func (g *TemplateGenerator) Generate(req domain.GenerationRequest) domain.GenerationResult {
	category := req.Category
	if !category.IsValid() {
		category = classify.InferCategory(req.Context)
	}
	safety := req.SafetyLevel
	if !safety.IsValid() {
		safety = classify.InferSafetyLevel(req.Context)
	}
	unit := req.Unit
	if !unit.IsValid() {
		unit = classify.InferUnitCategory(req.Context)
	}

	// Alerts are always safety messages: an icon and an imperative
	// prefix are mandatory even when the context gave no severity cue.
	if category == domain.CategoryAlert && safety == "" {
		safety = domain.SafetyWarning
	}

	lower := strings.ToLower(req.Context)

	var br branchResult
	switch category {
	case domain.CategoryButton:
		br = buttonBranch(lower, req.UsageStyle)
	case domain.CategoryAlert:
		br = alertBranch(lower, safety, unit, string(req.Value))
	case domain.CategoryInput:
		br = inputBranch(unit)
	case domain.CategoryStatus:
		br = statusBranch(lower)
	case domain.CategoryParameter, domain.CategoryMeasurement:
		br = parameterBranch(unit, string(req.Value))
	case domain.CategoryAction:
		br = actionBranch(lower, req.UsageStyle)
	default:
		br = buttonBranch(lower, req.UsageStyle)
	}

	if isBlank(br.text) {
		br.text = localized{
			en: guideline.FallbackText,
			ko: guideline.FallbackTextKo,
			zh: guideline.FallbackTextZh,
			ja: guideline.FallbackTextJa,
		}
		br.explanation = localized{
			en: "Context was insufficient to generate specific text; generic fallback applied.",
			ko: "문맥이 불충분하여 구체적인 텍스트를 생성하지 못했습니다. 기본 텍스트가 적용되었습니다.",
			zh: "上下文不足，无法生成具体文本，已应用默认文本。",
			ja: "コンテキストが不十分なため、具体的なテキストを生成できませんでした。デフォルトのテキストが適用されました。",
		}
		br.rules = append(br.rules, "Fallback: Insufficient context")
	}

	if safety != "" {
		icon := guideline.SafetyIcons[safety]
		br.text = localized{
			en: icon + " " + br.text.en,
			ko: icon + " " + br.text.ko,
			zh: icon + " " + br.text.zh,
			ja: icon + " " + br.text.ja,
		}
		br.rules = append(br.rules, "Safety icon applied")
	}

	return domain.GenerationResult{
		Text:          br.text.en,
		TextKo:        br.text.ko,
		TextZh:        br.text.zh,
		TextJa:        br.text.ja,
		Explanation:   br.explanation.en,
		ExplanationKo: br.explanation.ko,
		ExplanationZh: br.explanation.zh,
		ExplanationJa: br.explanation.ja,
		AppliedRules:  br.rules,
	}
}

func isBlank(t localized) bool {
	return strings.TrimSpace(t.en) == "" || strings.TrimSpace(t.ko) == "" ||
		strings.TrimSpace(t.zh) == "" || strings.TrimSpace(t.ja) == ""
}

// formatValue renders a value with its canonical unit symbol.
// Symbols that begin with a letter take a separating space (15 Torr,
// 30 sccm); the degree sign attaches directly (350°C).
func formatValue(value string, unit domain.UnitCategory) string {
	symbol := guideline.UnitSymbol(unit)
	if symbol == "" {
		return value
	}
	c := symbol[0]
	if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return value + " " + symbol
	}
	return value + symbol
}

func containsAny(lower string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
