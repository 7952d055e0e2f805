// Package validate scores arbitrary UI text against the IPS guidelines.
// Validation runs four independent passes (accuracy, clarity, safety,
// usability) and is failure-free by construction: any input string,
// including the empty string, produces four well-formed results.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/guideline"
	"github.com/ohjihoon05/ipswriter/pkg/textutil"
)

// Penalty table. Scores start at 100, deduct per issue, floor at 0.
const (
	penaltyMissingUnit       = 15
	penaltyProhibitedTerm    = 20
	penaltyVagueModifier     = 10
	penaltyMissingIcon       = 30
	penaltyMissingActionVerb = 25
	penaltyMissingValue      = 15
	penaltyLongText          = 5
	penaltyNonstandardTerm   = 10
)

var numberPattern = regexp.MustCompile(`\b\d+\.?\d*\b`)

// Validate scores the text and returns exactly one result per category,
// in the fixed order accuracy, clarity, safety, usability. It is pure:
// identical input always yields identical output.
func Validate(text string) []domain.ValidationResult {
	return []domain.ValidationResult{
		validateAccuracy(text),
		validateClarity(text),
		validateSafety(text),
		validateUsability(text),
	}
}

// validateAccuracy checks that every numeric value carries an explicit
// unit, a percentage sign, or a counting-noun marker.
func validateAccuracy(text string) domain.ValidationResult {
	var issues []domain.ValidationIssue
	score := 100

	for _, num := range numberPattern.FindAllString(text, -1) {
		if hasAdjacentUnit(text, num) {
			continue
		}
		if strings.Contains(text, "%") || strings.Contains(text, "개") {
			continue
		}
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueWarning,
			Message:      fmt.Sprintf("Number %q found without unit specification", num),
			MessageKo:    fmt.Sprintf("숫자 %q에 단위가 명시되지 않음", num),
			MessageZh:    fmt.Sprintf("数字%q未指定单位", num),
			MessageJa:    fmt.Sprintf("数値%qに単位が指定されていません", num),
			Suggestion:   fmt.Sprintf("Add appropriate unit (e.g., %s°C, %sTorr)", num, num),
			SuggestionKo: fmt.Sprintf("적절한 단위 추가 필요 (예: %s°C, %sTorr)", num, num),
			SuggestionZh: fmt.Sprintf("请添加适当的单位（例如：%s°C，%sTorr）", num, num),
			SuggestionJa: fmt.Sprintf("適切な単位を追加してください（例：%s°C、%sTorr）", num, num),
		})
		score -= penaltyMissingUnit
	}

	return result(domain.ValidationAccuracy, score, issues)
}

// hasAdjacentUnit reports whether the number appears immediately next
// to a canonical unit symbol, with or without a space.
func hasAdjacentUnit(text, num string) bool {
	for _, unit := range guideline.Units {
		if strings.Contains(text, num+unit) || strings.Contains(text, num+" "+unit) {
			return true
		}
	}
	return false
}

// validateClarity flags prohibited vague expressions and hedging
// modifiers.
func validateClarity(text string) domain.ValidationResult {
	var issues []domain.ValidationIssue
	score := 100
	lower := strings.ToLower(text)

	for _, expr := range guideline.ProhibitedExpressions {
		if !strings.Contains(text, expr) {
			continue
		}
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueError,
			Message:      fmt.Sprintf("Prohibited vague expression detected: %q", expr),
			MessageKo:    fmt.Sprintf("금지된 모호한 표현 감지: %q", expr),
			MessageZh:    fmt.Sprintf("检测到禁用的模糊表达：%q", expr),
			MessageJa:    fmt.Sprintf("禁止されている曖昧な表現を検出：%q", expr),
			Suggestion:   "Use specific values, ranges, or concrete terms",
			SuggestionKo: "구체적인 값, 범위, 또는 명확한 용어 사용",
			SuggestionZh: "使用具体的值、范围或明确的术语",
			SuggestionJa: "具体的な値、範囲、または明確な用語を使用してください",
		})
		score -= penaltyProhibitedTerm
	}

	for _, modifier := range guideline.VagueModifiers {
		if !strings.Contains(lower, modifier) {
			continue
		}
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueWarning,
			Message:      fmt.Sprintf("Vague modifier detected: %q", modifier),
			MessageKo:    fmt.Sprintf("모호한 수식어 감지: %q", modifier),
			MessageZh:    fmt.Sprintf("检测到模糊修饰词：%q", modifier),
			MessageJa:    fmt.Sprintf("曖昧な修飾語を検出：%q", modifier),
			Suggestion:   "Remove vague modifiers and be definitive",
			SuggestionKo: "모호한 수식어를 제거하고 명확하게 표현",
			SuggestionZh: "删除模糊修饰词并明确表达",
			SuggestionJa: "曖昧な修飾語を削除して明確に表現してください",
		})
		score -= penaltyVagueModifier
	}

	return result(domain.ValidationClarity, score, issues)
}

// validateSafety checks safety-relevant text for a mandated icon, an
// operator action verb, and a concrete numeric value on exceeded-limit
// claims. Text without hazard vocabulary always scores 100.
func validateSafety(text string) domain.ValidationResult {
	var issues []domain.ValidationIssue
	score := 100
	lower := strings.ToLower(text)

	if !containsAny(lower, guideline.HazardKeywords) {
		return result(domain.ValidationSafety, score, issues)
	}

	if !hasSafetyIcon(text) {
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueError,
			Message:      "Safety-related text missing warning icon",
			MessageKo:    "안전 관련 텍스트에 경고 아이콘 누락",
			MessageZh:    "安全相关文本缺少警告图标",
			MessageJa:    "安全関連テキストに警告アイコンがありません",
			Suggestion:   "Add appropriate safety icon (⚠️, 🔴, 🚨, 🚫)",
			SuggestionKo: "적절한 안전 아이콘 추가 (⚠️, 🔴, 🚨, 🚫)",
			SuggestionZh: "添加适当的安全图标（⚠️、🔴、🚨、🚫）",
			SuggestionJa: "適切な安全アイコンを追加してください（⚠️、🔴、🚨、🚫）",
		})
		score -= penaltyMissingIcon
	}

	if !containsAny(lower, guideline.ActionVerbs) {
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueError,
			Message:      "Safety alert missing action verb - operator needs clear instruction",
			MessageKo:    "안전 경고에 행동 동사 누락 - 운영자에게 명확한 지시 필요",
			MessageZh:    "安全警报缺少动作动词 - 操作员需要明确的指示",
			MessageJa:    "安全警告に行動動詞が欠落 - オペレーターに明確な指示が必要",
			Suggestion:   "Add action verb: Stop, Vent, Check, Close, Contact",
			SuggestionKo: "행동 동사 추가: 정지, 배기, 확인, 닫기, 연락",
			SuggestionZh: "添加动作动词：停止、排气、检查、关闭、联系",
			SuggestionJa: "行動動詞を追加：停止、ベント、確認、閉じる、連絡",
		})
		score -= penaltyMissingActionVerb
	}

	if containsAny(lower, guideline.LimitKeywords) && !textutil.HasDigit(text) {
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueWarning,
			Message:      "Limit exceeded alert should include specific numeric value",
			MessageKo:    "한계 초과 경고에 구체적인 숫자 값 포함 필요",
			MessageZh:    "超出限制警报应包含具体数值",
			MessageJa:    "制限超過警告には具体的な数値を含める必要があります",
			Suggestion:   `Add current value and limit (e.g., "Temperature at 480°C (Limit: 450°C)")`,
			SuggestionKo: `현재 값과 한계 추가 (예: "온도 480°C (한계: 450°C)")`,
			SuggestionZh: `添加当前值和限制（例如："温度 480°C（限制：450°C）"）`,
			SuggestionJa: `現在の値と制限を追加（例：「温度 480°C（制限：450°C）」）`,
		})
		score -= penaltyMissingValue
	}

	return result(domain.ValidationSafety, score, issues)
}

func hasSafetyIcon(text string) bool {
	for _, icon := range guideline.AllSafetyIcons {
		if strings.Contains(text, icon) {
			return true
		}
	}
	return false
}

// validateUsability checks length, script mixing, and terminology
// consistency.
func validateUsability(text string) domain.ValidationResult {
	var issues []domain.ValidationIssue
	score := 100

	if len([]rune(text)) > 100 {
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueInfo,
			Message:      "Text may be too long for UI component",
			MessageKo:    "UI 컴포넌트에 비해 텍스트가 길 수 있음",
			MessageZh:    "UI组件的文本可能过长",
			MessageJa:    "UIコンポーネントに対してテキストが長すぎる可能性があります",
			Suggestion:   "Consider breaking into multiple lines or shortening",
			SuggestionKo: "여러 줄로 나누거나 간결하게 수정 고려",
			SuggestionZh: "考虑分成多行或缩短",
			SuggestionJa: "複数行に分割するか短縮を検討してください",
		})
		score -= penaltyLongText
	}

	// Bilingual mixing is noted without penalty.
	if textutil.HasHangul(text) && textutil.HasLatin(text) {
		issues = append(issues, domain.ValidationIssue{
			Type:         domain.IssueInfo,
			Message:      "Text contains both Korean and English",
			MessageKo:    "텍스트에 한글과 영문이 혼용됨",
			MessageZh:    "文本同时包含韩文和英文",
			MessageJa:    "テキストに韓国語と英語が混在しています",
			Suggestion:   "Ensure proper spacing and formatting for bilingual text",
			SuggestionKo: "이중 언어 텍스트의 적절한 간격과 형식 확인",
			SuggestionZh: "确保双语文本的正确间距和格式",
			SuggestionJa: "バイリンガルテキストの適切な間隔とフォーマットを確認してください",
		})
	}

	for _, term := range guideline.NonstandardTerms {
		for _, variation := range term.Variations {
			if !strings.Contains(text, variation) {
				continue
			}
			issues = append(issues, domain.ValidationIssue{
				Type:         domain.IssueWarning,
				Message:      fmt.Sprintf("Inconsistent terminology: %q", variation),
				MessageKo:    fmt.Sprintf("일관성 없는 용어: %q", variation),
				MessageZh:    fmt.Sprintf("术语不一致：%q", variation),
				MessageJa:    fmt.Sprintf("用語の不一致：%q", variation),
				Suggestion:   fmt.Sprintf("Use standard term for %q", term.Standard),
				SuggestionKo: fmt.Sprintf("%q에 대한 표준 용어 사용", term.Standard),
				SuggestionZh: fmt.Sprintf("使用%q的标准术语", term.Standard),
				SuggestionJa: fmt.Sprintf("%qの標準用語を使用してください", term.Standard),
			})
			score -= penaltyNonstandardTerm
		}
	}

	return result(domain.ValidationUsability, score, issues)
}

// result clamps the score to [0,100] and derives the pass flag.
func result(category domain.ValidationCategory, score int, issues []domain.ValidationIssue) domain.ValidationResult {
	if score < 0 {
		score = 0
	}
	if issues == nil {
		issues = []domain.ValidationIssue{}
	}
	return domain.ValidationResult{
		Category: category,
		Passed:   score >= domain.PassThreshold,
		Score:    score,
		Issues:   issues,
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
