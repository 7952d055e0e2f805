// Package guideline holds the static reference tables of the IPS house
// style: canonical units, mandated safety iconography, status indicators,
// and the controlled vocabulary shared by the generator and the validator.
// Everything here is fixed once defined and read-only.
package guideline

import "github.com/ohjihoon05/ipswriter/internal/domain"

// Units maps each measurement category to its canonical unit symbol.
var Units = map[domain.UnitCategory]string{
	domain.UnitTemperature: "°C",
	domain.UnitPressure:    "Torr",
	domain.UnitFlow:        "sccm",
	domain.UnitPower:       "W",
	domain.UnitVoltage:     "V",
	domain.UnitCurrent:     "A",
	domain.UnitTime:        "s",
	domain.UnitRPM:         "RPM",
}

// UnitSymbol returns the canonical unit symbol for a category, or ""
// when the category is unknown.
func UnitSymbol(u domain.UnitCategory) string {
	return Units[u]
}

// SafetyIcons maps each safety level to its mandated icon.
var SafetyIcons = map[domain.SafetyLevel]string{
	domain.SafetyCritical: "🚨",
	domain.SafetyDanger:   "🔴",
	domain.SafetyWarning:  "⚠️",
	domain.SafetyBlocked:  "🚫",
}

// AllSafetyIcons lists every mandated safety icon, for presence checks.
var AllSafetyIcons = []string{"🚨", "🔴", "⚠️", "🚫"}

// StatusIndicator is a canonical status icon/label pair.
type StatusIndicator struct {
	Icon   string
	Text   string
	TextKo string
	TextZh string
	TextJa string
}

// StatusIndicators maps status keys to their canonical display pair.
var StatusIndicators = map[string]StatusIndicator{
	"running":    {Icon: "🟢", Text: "Running", TextKo: "실행 중", TextZh: "运行中", TextJa: "実行中"},
	"stopped":    {Icon: "⚪", Text: "Stopped", TextKo: "정지", TextZh: "停止", TextJa: "停止"},
	"error":      {Icon: "🔴", Text: "Error", TextKo: "오류", TextZh: "错误", TextJa: "エラー"},
	"warning":    {Icon: "🟡", Text: "Warning", TextKo: "경고", TextZh: "警告", TextJa: "警告"},
	"ready":      {Icon: "🟢", Text: "Ready", TextKo: "준비", TextZh: "准备", TextJa: "準備"},
	"processing": {Icon: "🔵", Text: "Processing", TextKo: "처리 중", TextZh: "处理中", TextJa: "処理中"},
	"complete":   {Icon: "✅", Text: "Complete", TextKo: "완료", TextZh: "完成", TextJa: "完了"},
}

// ProhibitedExpressions are vague terms the guideline forbids outright.
var ProhibitedExpressions = []string{
	"적절한",
	"적당한",
	"조금",
	"약간",
	"잠시",
	"나중에",
	"가능하면",
	"대략",
	"정도",
	"쯤",
}

// VagueModifiers are hedging words that weaken instructions.
var VagueModifiers = []string{"maybe", "perhaps", "possibly", "아마", "어쩌면", "대충"}

// HazardKeywords trigger the safety validation pass. Bare Korean
// measurement nouns (압력, 온도, ...) are deliberately absent: a routine
// readout such as "챔버 압력: 10 Torr" is not a safety message.
var HazardKeywords = []string{
	"danger", "warning", "caution", "risk", "hazard", "emergency",
	"위험", "경고", "주의", "비상", "긴급",
	"error", "fault", "failure", "오류", "장애", "고장",
	"pressure", "temperature", "voltage", "current",
	"leak", "누출", "exceed", "초과",
}

// ActionVerbs are the operator-oriented verbs a safety alert must carry.
// The generator's alert bodies and the validator's safety pass share
// this vocabulary so generated alerts always validate.
var ActionVerbs = []string{
	"stop", "vent", "check", "close", "contact", "verify", "adjust",
	"정지", "배기", "확인", "닫기", "연락", "검증", "조절", "즉시",
}

// LimitKeywords mark text that claims a limit was exceeded and must
// therefore carry a concrete numeric value.
var LimitKeywords = []string{"exceed", "초과", "limit"}

// NonstandardTerm pairs a standard term with forbidden synonyms.
type NonstandardTerm struct {
	Standard   string
	Variations []string
}

// NonstandardTerms lists known non-standard synonyms that break
// terminology consistency.
var NonstandardTerms = []NonstandardTerm{
	{Standard: "start", Variations: []string{"개시", "착수", "출발"}},
	{Standard: "stop", Variations: []string{"중단", "멈춤", "중지"}},
}

// Fallback text used when no template branch produces content.
// Callers must never receive an empty string.
const (
	FallbackText   = "System"
	FallbackTextKo = "시스템"
	FallbackTextZh = "系统"
	FallbackTextJa = "システム"
)
