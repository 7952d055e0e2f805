package generate

import (
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/guideline"
)

// quantityNames maps each unit category to its localized quantity name.
var quantityNames = map[domain.UnitCategory]localized{
	domain.UnitTemperature: {"Temperature", "온도", "温度", "温度"},
	domain.UnitPressure:    {"Pressure", "압력", "压力", "圧力"},
	domain.UnitFlow:        {"Gas Flow Rate", "가스 유량", "气体流量", "ガス流量"},
	domain.UnitPower:       {"Power", "전력", "功率", "電力"},
	domain.UnitVoltage:     {"Voltage", "전압", "电压", "電圧"},
	domain.UnitCurrent:     {"Current", "전류", "电流", "電流"},
	domain.UnitTime:        {"Time", "시간", "时间", "時間"},
	domain.UnitRPM:         {"Rotation Speed", "회전 속도", "转速", "回転速度"},
}

// parameterBranch renders either a precise value with its canonical
// unit (identical in all four languages) or a quantity label naming the
// unit in parentheses.
func parameterBranch(unit domain.UnitCategory, value string) branchResult {
	if value != "" && unit.IsValid() {
		v := formatValue(value, unit)
		return branchResult{
			text: localized{en: v, ko: v, zh: v, ja: v},
			explanation: localized{
				en: "Precise value rendered with the canonical unit; numbers and symbols are not translated.",
				ko: "표준 단위와 함께 정확한 값을 표기합니다. 숫자와 기호는 번역하지 않습니다.",
				zh: "使用标准单位表示精确值；数字和符号不翻译。",
				ja: "標準単位で正確な値を表記します。数値と記号は翻訳しません。",
			},
			rules: []string{"Principle: Accuracy", "FR-002: Unit specification"},
		}
	}

	name, ok := quantityNames[unit]
	if !ok {
		return branchResult{
			text: localized{"Value", "값", "数值", "値"},
			explanation: localized{
				en: "No physical quantity identified; generic value label applied.",
				ko: "물리량을 식별하지 못해 일반 값 라벨이 적용되었습니다.",
				zh: "未识别物理量，已应用通用数值标签。",
				ja: "物理量を特定できなかったため、汎用の値ラベルが適用されました。",
			},
			rules: []string{"Principle: Consistency"},
		}
	}

	symbol := guideline.UnitSymbol(unit)
	return branchResult{
		text: localized{
			en: name.en + " (" + symbol + ")",
			ko: name.ko + " (" + symbol + ")",
			zh: name.zh + " (" + symbol + ")",
			ja: name.ja + " (" + symbol + ")",
		},
		explanation: localized{
			en: "Parameter label names the physical quantity with its canonical unit in parentheses.",
			ko: "파라미터 라벨은 물리량 이름과 괄호 안의 표준 단위를 표기합니다.",
			zh: "参数标签标明物理量名称，并在括号中标注标准单位。",
			ja: "パラメータラベルは物理量の名前と括弧内の標準単位を表記します。",
		},
		rules: []string{"Principle: Accuracy", "FR-002: Unit specification"},
	}
}

// inputBranch renders an action-verb-prefixed input label.
func inputBranch(unit domain.UnitCategory) branchResult {
	name, ok := quantityNames[unit]
	if !ok {
		return branchResult{
			text: localized{"Enter Value", "값 입력", "输入数值", "値を入力"},
			explanation: localized{
				en: "Input label starts with an action verb.",
				ko: "입력 라벨은 동작 동사로 시작합니다.",
				zh: "输入标签以动作动词开始。",
				ja: "入力ラベルは動作動詞で始まります。",
			},
			rules: []string{"Action verb first"},
		}
	}

	symbol := guideline.UnitSymbol(unit)
	var text localized
	if unit == domain.UnitFlow {
		// Flow keeps its established Set Gas Flow Rate wording.
		text = localized{
			en: "Set Gas Flow Rate (" + symbol + ")",
			ko: "가스 유량 설정 (" + symbol + ")",
			zh: "设置气体流量 (" + symbol + ")",
			ja: "ガス流量を設定 (" + symbol + ")",
		}
	} else {
		text = localized{
			en: "Set Target " + name.en + " (" + symbol + ")",
			ko: "목표 " + name.ko + " 설정 (" + symbol + ")",
			zh: "设置目标" + name.zh + " (" + symbol + ")",
			ja: "目標" + name.ja + "を設定 (" + symbol + ")",
		}
	}

	return branchResult{
		text: text,
		explanation: localized{
			en: "Input label starts with an action verb and always names the unit.",
			ko: "입력 라벨은 동작 동사로 시작하며 항상 단위를 표기합니다.",
			zh: "输入标签以动作动词开始，并始终标注单位。",
			ja: "入力ラベルは動作動詞で始まり、常に単位を表記します。",
		},
		rules: []string{"Action verb first", "FR-002: Unit specification"},
	}
}

// statusRule binds trigger keywords to a canonical status indicator.
type statusRule struct {
	keywords []string
	key      string
}

// statusRules is the ordered status vocabulary.
var statusRules = []statusRule{
	{[]string{"running", "실행"}, "running"},
	{[]string{"stopped", "정지"}, "stopped"},
	{[]string{"error", "오류"}, "error"},
	{[]string{"warning", "경고"}, "warning"},
	{[]string{"ready", "준비"}, "ready"},
	{[]string{"processing", "처리"}, "processing"},
	{[]string{"complete", "완료"}, "complete"},
}

// statusBranch maps the context to the fixed status vocabulary, each
// entry carrying its own icon.
func statusBranch(lower string) branchResult {
	for _, rule := range statusRules {
		if containsAny(lower, rule.keywords...) {
			ind := guideline.StatusIndicators[rule.key]
			return branchResult{
				text: localized{
					en: ind.Icon + " " + ind.Text,
					ko: ind.Icon + " " + ind.TextKo,
					zh: ind.Icon + " " + ind.TextZh,
					ja: ind.Icon + " " + ind.TextJa,
				},
				explanation: localized{
					en: "Status uses the standard icon/label pair for immediate visual recognition.",
					ko: "상태는 즉각적인 시각 인식을 위해 표준 아이콘/라벨 쌍을 사용합니다.",
					zh: "状态使用标准图标/标签组合以便立即视觉识别。",
					ja: "状態は即座の視覚認識のために標準アイコン/ラベルの組を使用します。",
				},
				rules: []string{"Principle: Consistency", "Standard status indicator"},
			}
		}
	}

	return branchResult{
		text: localized{"Status", "상태", "状态", "状態"},
		explanation: localized{
			en: "No specific state matched; generic status label applied.",
			ko: "특정 상태가 매칭되지 않아 일반 상태 라벨이 적용되었습니다.",
			zh: "未匹配到特定状态，已应用通用状态标签。",
			ja: "特定の状態に一致しなかったため、汎用の状態ラベルが適用されました。",
		},
		rules: []string{"Principle: Consistency"},
	}
}
