// Package classify provides unit tests for context inference.
package classify

import (
	"testing"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    domain.ComponentCategory
	}{
		{
			name:    "alert keyword wins over lower-priority keywords",
			context: "압력 초과 알림 버튼",
			want:    domain.CategoryAlert,
		},
		{
			name:    "english alert keyword",
			context: "high pressure alarm",
			want:    domain.CategoryAlert,
		},
		{
			name:    "status display",
			context: "공정 진행 상태 표시",
			want:    domain.CategoryStatus,
		},
		{
			name:    "explicit input field",
			context: "target temperature input field",
			want:    domain.CategoryInput,
		},
		{
			name:    "korean input",
			context: "목표값 입력 필드",
			want:    domain.CategoryInput,
		},
		{
			name:    "quantity with setting word is a parameter",
			context: "챔버 온도 설정 버튼",
			want:    domain.CategoryParameter,
		},
		{
			name:    "quantity with display qualifier is a measurement",
			context: "챔버 압력 측정 값",
			want:    domain.CategoryMeasurement,
		},
		{
			name:    "quantity with monitor qualifier",
			context: "rf power monitor",
			want:    domain.CategoryMeasurement,
		},
		{
			name:    "bare setting surface is an input",
			context: "레시피 설정 화면",
			want:    domain.CategoryInput,
		},
		{
			name:    "plain button",
			context: "공정 시작 버튼",
			want:    domain.CategoryButton,
		},
		{
			name:    "control action",
			context: "밸브 제어 동작",
			want:    domain.CategoryAction,
		},
		{
			name:    "no keyword defaults to button",
			context: "chamber lid",
			want:    domain.CategoryButton,
		},
		{
			name:    "empty context defaults to button",
			context: "",
			want:    domain.CategoryButton,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferCategory(tt.context)
			if got != tt.want {
				t.Errorf("InferCategory(%q) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}

// Any context containing an alert keyword must classify as alert no
// matter what lower-priority vocabulary co-occurs.
func TestInferCategory_AlertPriority(t *testing.T) {
	contexts := []string{
		"온도 경고 상태 표시",
		"pressure exceed input field",
		"오류 알림 버튼",
		"leak detected near flow controller",
	}

	for _, ctx := range contexts {
		if got := InferCategory(ctx); got != domain.CategoryAlert {
			t.Errorf("InferCategory(%q) = %q, want alert", ctx, got)
		}
	}
}

func TestInferSafetyLevel(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    domain.SafetyLevel
	}{
		{"emergency is critical", "emergency stop required", domain.SafetyCritical},
		{"korean urgent", "긴급 정지", domain.SafetyCritical},
		{"critical outranks danger", "critical: 위험 초과", domain.SafetyCritical},
		{"explicit danger", "위험 수준 도달", domain.SafetyDanger},
		{"exceed is danger", "압력 초과", domain.SafetyDanger},
		{"high pressure combination", "high pressure in chamber", domain.SafetyDanger},
		{"high alone is not danger", "high throughput recipe warning", domain.SafetyWarning},
		{"caution is warning", "주의: 뜨거운 표면", domain.SafetyWarning},
		{"interlock is blocked", "door interlock engaged", domain.SafetyBlocked},
		{"korean blocked", "도어 차단", domain.SafetyBlocked},
		{"no safety signal", "공정 시작 버튼", ""},
		{"empty context", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferSafetyLevel(tt.context)
			if got != tt.want {
				t.Errorf("InferSafetyLevel(%q) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}

func TestInferUnitCategory(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    domain.UnitCategory
	}{
		{"temperature english", "chamber temperature", domain.UnitTemperature},
		{"temperature korean", "온도 설정", domain.UnitTemperature},
		{"temperature beats pressure by order", "temperature and pressure", domain.UnitTemperature},
		{"pressure", "챔버 압력", domain.UnitPressure},
		{"flow", "가스 유량", domain.UnitFlow},
		{"power", "rf power", domain.UnitPower},
		{"voltage", "bias 전압", domain.UnitVoltage},
		{"current", "전류 제한", domain.UnitCurrent},
		{"time", "공정 시간", domain.UnitTime},
		{"rotation", "척 회전 속도", domain.UnitRPM},
		{"no unit signal", "공정 시작 버튼", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferUnitCategory(tt.context)
			if got != tt.want {
				t.Errorf("InferUnitCategory(%q) = %q, want %q", tt.context, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	got := Classify("압력 초과 알림")

	if got.Category != domain.CategoryAlert {
		t.Errorf("Category = %q, want alert", got.Category)
	}
	if got.SafetyLevel != domain.SafetyDanger {
		t.Errorf("SafetyLevel = %q, want danger", got.SafetyLevel)
	}
	if got.Unit != domain.UnitPressure {
		t.Errorf("Unit = %q, want pressure", got.Unit)
	}
}
