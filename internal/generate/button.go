package generate

import (
	"fmt"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

// verbTemplate is one button/action vocabulary entry: the trigger
// keywords and the fixed four-language rendering.
type verbTemplate struct {
	keywords    []string
	verb        localized
	explanation localized
	rules       []string
}

// buttonVerbs is the ordered button vocabulary. Emergency is tested
// before stop so that "emergency stop" never degrades to a plain Stop.
var buttonVerbs = []verbTemplate{
	{
		keywords: []string{"emergency", "긴급", "비상"},
		verb:     localized{"Emergency Stop", "긴급 정지", "紧急停止", "緊急停止"},
		explanation: localized{
			"Emergency actions use the strongest imperative form with standard terminology.",
			"긴급 동작은 표준 용어로 가장 강한 명령형을 사용합니다.",
			"紧急操作使用标准术语的最强命令形式。",
			"緊急操作は標準用語で最も強い命令形を使用します。",
		},
		rules: []string{"Principle: Safety", "Standard terminology"},
	},
	{
		keywords: []string{"start", "시작"},
		verb:     localized{"Start", "시작", "开始", "開始"},
		explanation: localized{
			"Button text uses a single clear action verb.",
			"버튼 텍스트는 하나의 명확한 동작 동사를 사용합니다.",
			"按钮文本使用单一明确的动作动词。",
			"ボタンテキストは単一の明確な動作動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility", "Standard terminology"},
	},
	{
		keywords: []string{"stop", "정지"},
		verb:     localized{"Stop", "정지", "停止", "停止"},
		explanation: localized{
			"Button text uses a single clear action verb.",
			"버튼 텍스트는 하나의 명확한 동작 동사를 사용합니다.",
			"按钮文本使用单一明确的动作动词。",
			"ボタンテキストは単一の明確な動作動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility", "Standard terminology"},
	},
	{
		keywords: []string{"reset", "초기화"},
		verb:     localized{"Reset", "초기화", "重置", "リセット"},
		explanation: localized{
			"Button text uses a single clear action verb.",
			"버튼 텍스트는 하나의 명확한 동작 동사를 사용합니다.",
			"按钮文本使用单一明确的动作动词。",
			"ボタンテキストは単一の明確な動作動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility", "Standard terminology"},
	},
	{
		keywords: []string{"confirm", "확인"},
		verb:     localized{"Confirm", "확인", "确认", "確認"},
		explanation: localized{
			"Button text uses a single clear action verb.",
			"버튼 텍스트는 하나의 명확한 동작 동사를 사용합니다.",
			"按钮文本使用单一明确的动作动词。",
			"ボタンテキストは単一の明確な動作動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility", "Standard terminology"},
	},
	{
		keywords: []string{"cancel", "취소"},
		verb:     localized{"Cancel", "취소", "取消", "キャンセル"},
		explanation: localized{
			"Button text uses a single clear action verb.",
			"버튼 텍스트는 하나의 명확한 동작 동사를 사용합니다.",
			"按钮文本使用单一明确的动作动词。",
			"ボタンテキストは単一の明確な動作動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility", "Standard terminology"},
	},
}

var defaultVerb = verbTemplate{
	verb: localized{"Execute", "실행", "执行", "実行"},
	explanation: localized{
		"No specific action matched; generic execute verb applied.",
		"특정 동작이 매칭되지 않아 일반 실행 동사가 적용되었습니다.",
		"未匹配到特定操作，已应用通用执行动词。",
		"特定の操作に一致しなかったため、汎用の実行動詞が適用されました。",
	},
	rules: []string{"Principle: Consistency"},
}

func buttonBranch(lower string, style domain.UsageStyle) branchResult {
	entry := defaultVerb
	for _, vt := range buttonVerbs {
		if containsAny(lower, vt.keywords...) {
			entry = vt
			break
		}
	}
	return renderVerb(entry, style)
}

// actionVerbs is the ordered action vocabulary.
var actionVerbs = []verbTemplate{
	{
		keywords: []string{"adjust", "조절"},
		verb:     localized{"Adjust", "조절", "调整", "調整"},
		explanation: localized{
			"Action text uses a single clear control verb.",
			"동작 텍스트는 하나의 명확한 제어 동사를 사용합니다.",
			"操作文本使用单一明确的控制动词。",
			"アクションテキストは単一の明確な制御動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility"},
	},
	{
		keywords: []string{"monitor", "모니터"},
		verb:     localized{"Monitor", "모니터링", "监控", "モニタリング"},
		explanation: localized{
			"Action text uses a single clear control verb.",
			"동작 텍스트는 하나의 명확한 제어 동사를 사용합니다.",
			"操作文本使用单一明确的控制动词。",
			"アクションテキストは単一の明確な制御動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility"},
	},
	{
		keywords: []string{"check", "확인", "점검"},
		verb:     localized{"Check", "확인", "检查", "確認"},
		explanation: localized{
			"Action text uses a single clear control verb.",
			"동작 텍스트는 하나의 명확한 제어 동사를 사용합니다.",
			"操作文本使用单一明确的控制动词。",
			"アクションテキストは単一の明確な制御動詞を使用します。",
		},
		rules: []string{"Principle: Immediate Comprehensibility"},
	},
}

func actionBranch(lower string, style domain.UsageStyle) branchResult {
	entry := defaultVerb
	for _, vt := range actionVerbs {
		if containsAny(lower, vt.keywords...) {
			entry = vt
			break
		}
	}
	return renderVerb(entry, style)
}

// renderVerb renders a verb entry as a short label, or as an
// explanatory sentence for the manual usage style.
func renderVerb(entry verbTemplate, style domain.UsageStyle) branchResult {
	br := branchResult{
		text:        entry.verb,
		explanation: entry.explanation,
		rules:       append([]string(nil), entry.rules...),
	}
	if style == domain.UsageManual {
		br.text = localized{
			en: fmt.Sprintf("Press the %s button to execute the operation.", entry.verb.en),
			ko: fmt.Sprintf("'%s' 버튼을 눌러 동작을 실행하세요.", entry.verb.ko),
			zh: fmt.Sprintf("按下\"%s\"按钮以执行操作。", entry.verb.zh),
			ja: fmt.Sprintf("「%s」ボタンを押して操作を実行してください。", entry.verb.ja),
		}
		br.rules = append(br.rules, "Usage: Manual")
	}
	return br
}
