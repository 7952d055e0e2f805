// Package generate provides unit tests for the template generator.
package generate

import (
	"strings"
	"testing"

	"github.com/ohjihoon05/ipswriter/internal/domain"
)

func TestGenerate_NeverEmpty(t *testing.T) {
	g := NewTemplateGenerator()

	requests := []domain.GenerationRequest{
		{Context: ""},
		{Context: "   "},
		{Context: "chamber lid"},
		{Context: "압력 초과 알림"},
		{Context: "공정 진행 상태 표시"},
		{Context: "목표 온도 입력"},
		{Context: "xyzzy", Category: domain.CategoryStatus},
		{Context: "", Category: domain.CategoryParameter},
	}

	for _, req := range requests {
		result := g.Generate(req)
		for field, text := range map[string]string{
			"Text":   result.Text,
			"TextKo": result.TextKo,
			"TextZh": result.TextZh,
			"TextJa": result.TextJa,
		} {
			if strings.TrimSpace(text) == "" {
				t.Errorf("Generate(%+v): %s is empty", req, field)
			}
		}
	}
}

func TestGenerate_ButtonVerbs(t *testing.T) {
	g := NewTemplateGenerator()

	tests := []struct {
		name    string
		context string
		want    string
		wantKo  string
	}{
		{"start button", "공정 시작 버튼", "Start", "시작"},
		{"stop button", "process stop button", "Stop", "정지"},
		{"reset button", "알람 초기화 버튼", "Reset", "초기화"},
		{"cancel button", "cancel button", "Cancel", "취소"},
		{"no verb falls back to execute", "chamber lid", "Execute", "실행"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Generate(domain.GenerationRequest{
				Context:  tt.context,
				Category: domain.CategoryButton,
			})
			if result.Text != tt.want {
				t.Errorf("Text = %q, want %q", result.Text, tt.want)
			}
			if result.TextKo != tt.wantKo {
				t.Errorf("TextKo = %q, want %q", result.TextKo, tt.wantKo)
			}
		})
	}
}

// Emergency vocabulary must be matched before the plain stop vocabulary.
func TestGenerate_EmergencyStopPriority(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context:  "emergency stop button",
		Category: domain.CategoryButton,
	})

	if !strings.Contains(result.Text, "Emergency Stop") {
		t.Errorf("Text = %q, want Emergency Stop", result.Text)
	}
	// "emergency" also implies critical severity, so the icon is seeded.
	if !strings.HasPrefix(result.Text, "🚨") {
		t.Errorf("Text = %q, want 🚨 prefix", result.Text)
	}
}

func TestGenerate_ManualStyle(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context:    "공정 시작 버튼",
		Category:   domain.CategoryButton,
		UsageStyle: domain.UsageManual,
	})

	if result.Text != "Press the Start button to execute the operation." {
		t.Errorf("Text = %q", result.Text)
	}
	if !strings.Contains(result.TextKo, "'시작' 버튼") {
		t.Errorf("TextKo = %q, want quoted verb", result.TextKo)
	}

	found := false
	for _, rule := range result.AppliedRules {
		if rule == "Usage: Manual" {
			found = true
		}
	}
	if !found {
		t.Errorf("AppliedRules = %v, want Usage: Manual tag", result.AppliedRules)
	}
}

// Numbers and unit symbols are never translated: with value and unit
// set, all four fields carry the identical rendering.
func TestGenerate_ValueNotTranslated(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context:  "챔버 온도",
		Category: domain.CategoryParameter,
		Unit:     domain.UnitTemperature,
		Value:    "350",
	})

	for field, text := range map[string]string{
		"Text":   result.Text,
		"TextKo": result.TextKo,
		"TextZh": result.TextZh,
		"TextJa": result.TextJa,
	} {
		if !strings.Contains(text, "350°C") {
			t.Errorf("%s = %q, want substring 350°C", field, text)
		}
	}

	if result.Text != result.TextKo || result.Text != result.TextZh || result.Text != result.TextJa {
		t.Errorf("value rendering differs across languages: %q %q %q %q",
			result.Text, result.TextKo, result.TextZh, result.TextJa)
	}
}

func TestGenerate_PressureAlert(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{Context: "압력 초과 알림"})

	// 초과 implies danger, so the red icon leads the text.
	if !strings.HasPrefix(result.TextKo, "🔴") {
		t.Errorf("TextKo = %q, want 🔴 prefix", result.TextKo)
	}
	if !strings.Contains(result.TextKo, "배기") {
		t.Errorf("TextKo = %q, want action verb 배기", result.TextKo)
	}
	if !strings.Contains(result.TextKo, "위험:") {
		t.Errorf("TextKo = %q, want severity prefix 위험:", result.TextKo)
	}
	if !strings.Contains(result.Text, "Vent chamber") {
		t.Errorf("Text = %q, want Vent chamber", result.Text)
	}
}

func TestGenerate_AlertValueInterpolation(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context: "temperature exceed alarm",
		Value:   "480",
	})

	if !strings.Contains(result.Text, "480°C") {
		t.Errorf("Text = %q, want 480°C", result.Text)
	}
	if !strings.Contains(result.TextKo, "공정 정지") {
		t.Errorf("TextKo = %q, want 공정 정지", result.TextKo)
	}
}

// Alerts always carry an icon, even when the context gives no severity cue.
func TestGenerate_AlertDefaultsToWarning(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context:  "notify operator",
		Category: domain.CategoryAlert,
	})

	if !strings.HasPrefix(result.Text, "⚠️") {
		t.Errorf("Text = %q, want ⚠️ prefix", result.Text)
	}
	if !strings.Contains(result.Text, "WARNING:") {
		t.Errorf("Text = %q, want WARNING: prefix", result.Text)
	}
}

func TestGenerate_InterlockAlert(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{Context: "door interlock alarm"})

	if !strings.HasPrefix(result.Text, "🚫") {
		t.Errorf("Text = %q, want 🚫 prefix", result.Text)
	}
	if !strings.Contains(result.Text, "Close chamber door") {
		t.Errorf("Text = %q, want Close chamber door", result.Text)
	}
}

func TestGenerate_StatusIndicators(t *testing.T) {
	g := NewTemplateGenerator()

	tests := []struct {
		name    string
		context string
		want    string
	}{
		{"running", "process running status", "🟢 Running"},
		{"error", "오류 상태 표시", "🔴 Error"},
		{"complete", "공정 완료 상태", "✅ Complete"},
		{"unknown state", "some status", "Status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Generate(domain.GenerationRequest{
				Context:  tt.context,
				Category: domain.CategoryStatus,
			})
			if result.Text != tt.want {
				t.Errorf("Text = %q, want %q", result.Text, tt.want)
			}
		})
	}
}

func TestGenerate_InputLabels(t *testing.T) {
	g := NewTemplateGenerator()

	tests := []struct {
		name    string
		unit    domain.UnitCategory
		want    string
		wantKo  string
	}{
		{"temperature", domain.UnitTemperature, "Set Target Temperature (°C)", "목표 온도 설정 (°C)"},
		{"flow keeps its wording", domain.UnitFlow, "Set Gas Flow Rate (sccm)", "가스 유량 설정 (sccm)"},
		{"no unit", "", "Enter Value", "값 입력"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Generate(domain.GenerationRequest{
				Context:  "input",
				Category: domain.CategoryInput,
				Unit:     tt.unit,
			})
			if result.Text != tt.want {
				t.Errorf("Text = %q, want %q", result.Text, tt.want)
			}
			if result.TextKo != tt.wantKo {
				t.Errorf("TextKo = %q, want %q", result.TextKo, tt.wantKo)
			}
		})
	}
}

func TestGenerate_ParameterLabel(t *testing.T) {
	g := NewTemplateGenerator()

	result := g.Generate(domain.GenerationRequest{
		Context:  "챔버 압력",
		Category: domain.CategoryParameter,
	})

	if result.Text != "Pressure (Torr)" {
		t.Errorf("Text = %q, want Pressure (Torr)", result.Text)
	}
	if result.TextKo != "압력 (Torr)" {
		t.Errorf("TextKo = %q, want 압력 (Torr)", result.TextKo)
	}
}

func TestGenerate_FallbackOnNoSignal(t *testing.T) {
	g := NewTemplateGenerator()

	// Parameter with no unit signal renders the generic value label,
	// not the fallback: the fallback only covers blank branch output.
	result := g.Generate(domain.GenerationRequest{
		Context:  "",
		Category: domain.CategoryParameter,
	})
	if result.Text != "Value" {
		t.Errorf("Text = %q, want Value", result.Text)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		unit  domain.UnitCategory
		want  string
	}{
		{"degree attaches directly", "350", domain.UnitTemperature, "350°C"},
		{"letter symbol takes a space", "15", domain.UnitPressure, "15 Torr"},
		{"sccm takes a space", "30", domain.UnitFlow, "30 sccm"},
		{"watts take a space", "500", domain.UnitPower, "500 W"},
		{"unknown unit keeps bare value", "7", "", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatValue(tt.value, tt.unit)
			if got != tt.want {
				t.Errorf("formatValue(%q, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
			}
		})
	}
}
