// Package classify provides rule-based inference of component category,
// safety level, and unit category from free-text context descriptions.
// All functions are pure keyword matchers: they never fail, and the
// order of the keyword groups is the tie-break policy.
package classify

import (
	"strings"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// Keyword groups, ordered by priority. Safety-relevant vocabulary comes
// first so that alert text is never miscategorized as something
// lower-priority.

var alertKeywords = []string{
	"alert", "alarm", "알림", "경고", "warning", "위험", "danger",
	"error", "오류", "fault", "장애", "초과", "exceed", "과다",
	"high", "low", "leak", "누출",
}

var statusKeywords = []string{
	"status", "상태", "display", "표시", "indicator",
	"running", "실행", "stopped", "정지", "complete", "완료",
	"ready", "준비",
}

var inputKeywords = []string{
	"input", "입력", "field", "필드", "enter", "입력하",
}

var quantityKeywords = []string{
	"temperature", "온도", "pressure", "압력", "flow", "유량",
	"power", "전력", "voltage", "전압", "current", "전류",
}

var measurementQualifiers = []string{
	"display", "reading", "monitor", "표시", "측정", "값",
}

// settingKeywords route to input only after the physical-quantity check:
// "온도 설정" names a parameter, while a bare "설정 화면" is an input surface.
var settingKeywords = []string{"setting", "설정"}

var buttonKeywords = []string{
	"button", "버튼", "start", "시작", "stop", "정지",
	"cancel", "취소", "confirm", "확인", "reset", "초기화",
	"emergency", "긴급", "비상",
}

var actionKeywords = []string{
	"action", "동작", "execute", "실행", "control", "제어",
	"adjust", "조절",
}

// InferCategory determines the component category for a context string.
// It always returns a category; with no keyword match the default is
// button.
func InferCategory(context string) domain.ComponentCategory {
	lower := strings.ToLower(context)

	if containsAny(lower, alertKeywords) {
		return domain.CategoryAlert
	}
	if containsAny(lower, statusKeywords) {
		return domain.CategoryStatus
	}
	if containsAny(lower, inputKeywords) {
		return domain.CategoryInput
	}
	if containsAny(lower, quantityKeywords) {
		if containsAny(lower, measurementQualifiers) {
			return domain.CategoryMeasurement
		}
		return domain.CategoryParameter
	}
	if containsAny(lower, settingKeywords) {
		return domain.CategoryInput
	}
	if containsAny(lower, buttonKeywords) {
		return domain.CategoryButton
	}
	if containsAny(lower, actionKeywords) {
		return domain.CategoryAction
	}

	return domain.CategoryButton
}

// InferSafetyLevel determines the safety level implied by a context
// string, or "" when the context is not safety-related. First match
// wins: "emergency" outranks a co-occurring "high pressure" phrase.
func InferSafetyLevel(context string) domain.SafetyLevel {
	lower := strings.ToLower(context)

	if containsAny(lower, []string{"critical", "emergency", "긴급", "비상", "즉시"}) {
		return domain.SafetyCritical
	}
	highHazard := strings.Contains(lower, "high") &&
		(strings.Contains(lower, "pressure") || strings.Contains(lower, "temperature"))
	if containsAny(lower, []string{"danger", "위험", "과다", "초과", "exceed"}) || highHazard {
		return domain.SafetyDanger
	}
	if containsAny(lower, []string{"warning", "caution", "경고", "주의"}) {
		return domain.SafetyWarning
	}
	if containsAny(lower, []string{"blocked", "block", "차단", "interlock", "인터락"}) {
		return domain.SafetyBlocked
	}

	return ""
}

// unitRule binds a keyword group to a unit category. Tested in order;
// first match wins.
type unitRule struct {
	keywords []string
	unit     domain.UnitCategory
}

var unitRules = []unitRule{
	{[]string{"temperature", "온도", "temp"}, domain.UnitTemperature},
	{[]string{"pressure", "압력"}, domain.UnitPressure},
	{[]string{"flow", "유량"}, domain.UnitFlow},
	{[]string{"power", "전력", "파워"}, domain.UnitPower},
	{[]string{"voltage", "전압"}, domain.UnitVoltage},
	{[]string{"current", "전류"}, domain.UnitCurrent},
	{[]string{"time", "시간"}, domain.UnitTime},
	{[]string{"rpm", "회전"}, domain.UnitRPM},
}

// InferUnitCategory determines the measurement category implied by a
// context string, or "" when none applies.
func InferUnitCategory(context string) domain.UnitCategory {
	lower := strings.ToLower(context)

	for _, rule := range unitRules {
		if containsAny(lower, rule.keywords) {
			return rule.unit
		}
	}

	return ""
}

// Classify runs all three inference functions over one context string.
func Classify(context string) domain.Classification {
	return domain.Classification{
		Category:    InferCategory(context),
		SafetyLevel: InferSafetyLevel(context),
		Unit:        InferUnitCategory(context),
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
