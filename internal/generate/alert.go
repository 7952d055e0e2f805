package generate

import (
	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// alertPrefixes are the severity-specific imperative prefixes.
var alertPrefixes = map[domain.SafetyLevel]localized{
	domain.SafetyCritical: {"IMMEDIATE ACTION REQUIRED:", "즉시 조치 필요:", "需要立即行动:", "即時対応が必要:"},
	domain.SafetyDanger:   {"DANGER:", "위험:", "危险:", "危険:"},
	domain.SafetyWarning:  {"WARNING:", "경고:", "警告:", "警告:"},
	domain.SafetyBlocked:  {"BLOCKED:", "차단됨:", "已阻止:", "ブロック済:"},
}

// alertBranch renders a severity prefix plus a keyword-selected body.
// Exceeded-limit bodies interpolate the supplied value and unit, and
// every body carries a concrete operator action verb: the validator's
// safety pass checks the same vocabulary independently.
func alertBranch(lower string, safety domain.SafetyLevel, unit domain.UnitCategory, value string) branchResult {
	prefix, ok := alertPrefixes[safety]
	if !ok {
		prefix = alertPrefixes[domain.SafetyWarning]
	}

	var body localized
	rules := []string{"Principle: Safety", "Action verb included"}

	switch {
	case containsAny(lower, "temperature", "온도"):
		if value != "" {
			v := formatValue(value, domain.UnitTemperature)
			body = localized{
				en: "Stop process - Temperature at " + v + " (Limit exceeded)",
				ko: "공정 정지 - 온도 " + v + " (한계 초과)",
				zh: "停止工艺 - 温度 " + v + " (超出限制)",
				ja: "プロセス停止 - 温度 " + v + " (制限超過)",
			}
			rules = append(rules, "FR-002: Unit specification")
		} else {
			body = localized{
				en: "Stop process - Temperature limit exceeded",
				ko: "공정 정지 - 온도 한계 초과",
				zh: "停止工艺 - 超出温度限制",
				ja: "プロセス停止 - 温度制限超過",
			}
		}
	case containsAny(lower, "pressure", "압력"):
		if value != "" {
			v := formatValue(value, domain.UnitPressure)
			body = localized{
				en: "Vent chamber - Pressure at " + v + " (Limit exceeded)",
				ko: "챔버 배기 - 압력 " + v + " (한계 초과)",
				zh: "排气腔室 - 压力 " + v + " (超出限制)",
				ja: "チャンバーをベント - 圧力 " + v + " (制限超過)",
			}
			rules = append(rules, "FR-002: Unit specification")
		} else {
			body = localized{
				en: "Vent chamber - Pressure limit exceeded",
				ko: "챔버 배기 - 압력 한계 초과",
				zh: "排气腔室 - 超出压力限制",
				ja: "チャンバーをベント - 圧力制限超過",
			}
		}
	case containsAny(lower, "door", "도어", "interlock", "인터락", "차단"):
		body = localized{
			en: "Close chamber door - Interlock active",
			ko: "챔버 도어 닫기 - 인터락 작동 중",
			zh: "关闭腔室门 - 联锁激活",
			ja: "チャンバードアを閉める - インターロック作動中",
		}
	case containsAny(lower, "error", "오류", "fault", "장애", "고장"):
		body = localized{
			en: "Check system status - Error detected",
			ko: "시스템 상태 확인 - 오류 감지됨",
			zh: "检查系统状态 - 检测到错误",
			ja: "システム状態を確認 - エラー検出",
		}
	default:
		body = localized{
			en: "Check equipment status",
			ko: "설비 상태 확인",
			zh: "检查设备状态",
			ja: "装置の状態を確認",
		}
	}

	return branchResult{
		text: localized{
			en: prefix.en + " " + body.en,
			ko: prefix.ko + " " + body.ko,
			zh: prefix.zh + " " + body.zh,
			ja: prefix.ja + " " + body.ja,
		},
		explanation: localized{
			en: "Alert starts with a severity prefix and gives the operator a concrete action.",
			ko: "경고는 심각도 접두어로 시작하며 운영자에게 구체적인 행동을 지시합니다.",
			zh: "警报以严重级别前缀开始，并向操作员给出具体行动。",
			ja: "警告は重大度の接頭辞で始まり、オペレーターに具体的な行動を指示します。",
		},
		rules: rules,
	}
}
