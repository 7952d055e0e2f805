// Package domain contains the core domain models and types.
// These models represent the guideline contracts and are independent
// of any infrastructure concerns.
package domain

import (
	"encoding/json"
	"time"
)

// ComponentCategory is the structural role of a piece of UI text.
type ComponentCategory string

const (
	CategoryButton      ComponentCategory = "button"
	CategoryAlert       ComponentCategory = "alert"
	CategoryInput       ComponentCategory = "input"
	CategoryStatus      ComponentCategory = "status"
	CategoryParameter   ComponentCategory = "parameter"
	CategoryAction      ComponentCategory = "action"
	CategoryMeasurement ComponentCategory = "measurement"
)

// IsValid checks if the category is one of the allowed values.
func (c ComponentCategory) IsValid() bool {
	switch c {
	case CategoryButton, CategoryAlert, CategoryInput, CategoryStatus,
		CategoryParameter, CategoryAction, CategoryMeasurement:
		return true
	default:
		return false
	}
}

// SafetyLevel is the severity tier of a safety-relevant message.
// Each level is bound 1:1 to a mandated display icon.
type SafetyLevel string

const (
	SafetyCritical SafetyLevel = "critical"
	SafetyDanger   SafetyLevel = "danger"
	SafetyWarning  SafetyLevel = "warning"
	SafetyBlocked  SafetyLevel = "blocked"
)

// IsValid checks if the safety level is one of the allowed values.
func (s SafetyLevel) IsValid() bool {
	switch s {
	case SafetyCritical, SafetyDanger, SafetyWarning, SafetyBlocked:
		return true
	default:
		return false
	}
}

// UnitCategory identifies a physical measurement category.
// Each category is bound 1:1 to a canonical unit symbol.
type UnitCategory string

const (
	UnitTemperature UnitCategory = "temperature"
	UnitPressure    UnitCategory = "pressure"
	UnitFlow        UnitCategory = "flow"
	UnitPower       UnitCategory = "power"
	UnitVoltage     UnitCategory = "voltage"
	UnitCurrent     UnitCategory = "current"
	UnitTime        UnitCategory = "time"
	UnitRPM         UnitCategory = "rpm"
)

// IsValid checks if the unit category is one of the allowed values.
func (u UnitCategory) IsValid() bool {
	switch u {
	case UnitTemperature, UnitPressure, UnitFlow, UnitPower,
		UnitVoltage, UnitCurrent, UnitTime, UnitRPM:
		return true
	default:
		return false
	}
}

// UsageStyle selects the verbosity and tone of generated text,
// independent of the component category.
type UsageStyle string

const (
	UsageButton    UsageStyle = "button"
	UsagePopup     UsageStyle = "popup"
	UsageAlert     UsageStyle = "alert"
	UsageManual    UsageStyle = "manual"
	UsageParameter UsageStyle = "parameter"
)

// FlexValue is a numeric or string parameter value. JSON numbers and
// strings both unmarshal into it; numbers and unit symbols are never
// translated, so a plain string representation is sufficient.
type FlexValue string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = FlexValue(str)
		return nil
	}
	if s == "null" {
		*v = ""
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*v = FlexValue(num.String())
	return nil
}

// GenerationRequest is a single text-generation request.
// Context is mandatory free text; every other field is optional and,
// when absent, is inferred from the context by the classifier.
// Requests are transient and never mutated after creation.
type GenerationRequest struct {
	Category    ComponentCategory `json:"category,omitempty"`
	Context     string            `json:"context" binding:"required"`
	SafetyLevel SafetyLevel       `json:"safetyLevel,omitempty"`
	Unit        UnitCategory      `json:"unit,omitempty"`
	Value       FlexValue         `json:"value,omitempty"`
	UsageStyle  UsageStyle        `json:"usageStyle,omitempty"`
}

// GenerationResult holds the four localized text strings, the four
// localized explanations, and the ordered applied-rule tags.
// All four text fields are always populated, never empty.
type GenerationResult struct {
	Text          string `json:"text"`
	TextKo        string `json:"textKo"`
	TextZh        string `json:"textZh"`
	TextJa        string `json:"textJa"`
	Explanation   string `json:"explanation"`
	ExplanationKo string `json:"explanationKo"`
	ExplanationZh string `json:"explanationZh"`
	ExplanationJa string `json:"explanationJa"`

	// AppliedRules lists which guideline principles the text satisfies.
	// Free-form, for display and audit only.
	AppliedRules []string `json:"appliedRules"`
}

// Classification is the resolved output of context inference.
// SafetyLevel and Unit are empty when the context gives no signal.
type Classification struct {
	Category    ComponentCategory `json:"category"`
	SafetyLevel SafetyLevel       `json:"safetyLevel,omitempty"`
	Unit        UnitCategory      `json:"unit,omitempty"`
}

// IssueType is the severity of a validation issue.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
	IssueInfo    IssueType = "info"
)

// ValidationIssue is a single actionable finding from the validator.
type ValidationIssue struct {
	Type         IssueType `json:"type"`
	Message      string    `json:"message"`
	MessageKo    string    `json:"messageKo"`
	MessageZh    string    `json:"messageZh"`
	MessageJa    string    `json:"messageJa"`
	Suggestion   string    `json:"suggestion,omitempty"`
	SuggestionKo string    `json:"suggestionKo,omitempty"`
	SuggestionZh string    `json:"suggestionZh,omitempty"`
	SuggestionJa string    `json:"suggestionJa,omitempty"`
}

// ValidationCategory identifies one of the four scoring passes.
type ValidationCategory string

const (
	ValidationAccuracy  ValidationCategory = "accuracy"
	ValidationClarity   ValidationCategory = "clarity"
	ValidationSafety    ValidationCategory = "safety"
	ValidationUsability ValidationCategory = "usability"
)

// ValidationResult is the outcome of one scoring pass.
// Score is always in [0,100]; Passed is derived as Score >= 70.
type ValidationResult struct {
	Category ValidationCategory `json:"category"`
	Passed   bool               `json:"passed"`
	Score    int                `json:"score"`
	Issues   []ValidationIssue  `json:"issues"`
}

// PassThreshold is the minimum score for a validation pass to succeed.
const PassThreshold = 70

// GenerationResponse wraps a generation result with metadata.
type GenerationResponse struct {
	// Success indicates whether generation completed successfully.
	Success bool `json:"success"`

	// Result contains the generation result. It is populated even on
	// remote-provider failure, carrying the labeled error text.
	Result *GenerationResult `json:"result,omitempty"`

	// Error contains error details if generation failed.
	Error string `json:"error,omitempty"`

	// Source indicates which path produced the result
	// ("template", "remote:<provider>", "remote_error").
	Source string `json:"source,omitempty"`

	// ProcessedAt is the timestamp when generation completed.
	ProcessedAt time.Time `json:"processed_at"`
}

// TemplateExample is one context-to-text exemplar pair.
type TemplateExample struct {
	Text      string `json:"text" yaml:"text"`
	TextKo    string `json:"textKo" yaml:"textKo"`
	TextZh    string `json:"textZh" yaml:"textZh"`
	TextJa    string `json:"textJa" yaml:"textJa"`
	Context   string `json:"context" yaml:"context"`
	ContextKo string `json:"contextKo" yaml:"contextKo"`
	ContextZh string `json:"contextZh" yaml:"contextZh"`
	ContextJa string `json:"contextJa" yaml:"contextJa"`
}

// ComponentTemplate is a read-only catalog entry used for reference
// display and as a generation exemplar.
type ComponentTemplate struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	NameKo        string            `json:"nameKo" yaml:"nameKo"`
	NameZh        string            `json:"nameZh" yaml:"nameZh"`
	NameJa        string            `json:"nameJa" yaml:"nameJa"`
	Category      ComponentCategory `json:"componentType" yaml:"componentType"`
	Description   string            `json:"description" yaml:"description"`
	DescriptionKo string            `json:"descriptionKo" yaml:"descriptionKo"`
	DescriptionZh string            `json:"descriptionZh" yaml:"descriptionZh"`
	DescriptionJa string            `json:"descriptionJa" yaml:"descriptionJa"`
	Examples      []TemplateExample `json:"examples" yaml:"examples"`
	Guidelines    []string          `json:"guidelines" yaml:"guidelines"`
	GuidelinesKo  []string          `json:"guidelinesKo" yaml:"guidelinesKo"`
	GuidelinesZh  []string          `json:"guidelinesZh" yaml:"guidelinesZh"`
	GuidelinesJa  []string          `json:"guidelinesJa" yaml:"guidelinesJa"`
}
