// Package service provides unit tests for the writer orchestration.
package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ohjihoon05/ipswriter/internal/config"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/generate"
	"github.com/ohjihoon05/ipswriter/pkg/textutil"
	"go.uber.org/zap"
)

// stubClient is a controllable AI client for orchestration tests.
type stubClient struct {
	result  *domain.GenerationResult
	err     error
	lastReq domain.GenerationRequest
	calls   int
}

func (s *stubClient) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	s.calls++
	s.lastReq = req
	return s.result, s.err
}

func (s *stubClient) HealthCheck(ctx context.Context) error {
	return s.err
}

func newTemplateWriter() *Writer {
	return NewWriter(
		generate.NewTemplateGenerator(),
		nil,
		textutil.New(2000),
		WriterConfig{Mode: config.ModeTemplate, Provider: config.AIProviderOpenWebUI},
		zap.NewNop(),
	)
}

func TestWriter_Generate_Template(t *testing.T) {
	w := newTemplateWriter()

	resp := w.Generate(context.Background(), domain.GenerationRequest{
		Context: "  공정 시작 버튼  ",
	})

	if !resp.Success {
		t.Fatalf("Success = false: %+v", resp)
	}
	if resp.Source != "template" {
		t.Errorf("Source = %q, want template", resp.Source)
	}
	if resp.Result == nil || resp.Result.TextKo != "시작" {
		t.Errorf("Result = %+v, want normalized context producing 시작", resp.Result)
	}
	if resp.ProcessedAt.IsZero() {
		t.Error("ProcessedAt is zero")
	}
}

func TestWriter_Generate_RemoteSuccess(t *testing.T) {
	stub := &stubClient{
		result: &domain.GenerationResult{
			Text: "Start", TextKo: "시작", TextZh: "开始", TextJa: "開始",
			Explanation: "e", ExplanationKo: "e", ExplanationZh: "e", ExplanationJa: "e",
			AppliedRules: []string{"Principle: Consistency"},
		},
	}
	w := NewWriter(
		generate.NewTemplateGenerator(),
		stub,
		textutil.New(2000),
		WriterConfig{Mode: config.ModeRemote, Provider: config.AIProviderAnthropic},
		zap.NewNop(),
	)

	resp := w.Generate(context.Background(), domain.GenerationRequest{Context: "압력 초과 알림"})

	if !resp.Success {
		t.Fatalf("Success = false: %+v", resp)
	}
	if resp.Source != "remote:anthropic" {
		t.Errorf("Source = %q, want remote:anthropic", resp.Source)
	}
	if stub.calls != 1 {
		t.Errorf("client calls = %d, want 1", stub.calls)
	}

	// The request reaching the client must be pre-resolved.
	if stub.lastReq.Category != domain.CategoryAlert {
		t.Errorf("resolved Category = %q, want alert", stub.lastReq.Category)
	}
	if stub.lastReq.SafetyLevel != domain.SafetyDanger {
		t.Errorf("resolved SafetyLevel = %q, want danger", stub.lastReq.SafetyLevel)
	}
	if stub.lastReq.Unit != domain.UnitPressure {
		t.Errorf("resolved Unit = %q, want pressure", stub.lastReq.Unit)
	}
}

// Remote failures surface as a labeled four-language error result, not
// as an error return.
func TestWriter_Generate_RemoteFailure(t *testing.T) {
	stub := &stubClient{err: errors.New("connection refused")}
	w := NewWriter(
		generate.NewTemplateGenerator(),
		stub,
		textutil.New(2000),
		WriterConfig{Mode: config.ModeRemote, Provider: config.AIProviderOpenWebUI},
		zap.NewNop(),
	)

	resp := w.Generate(context.Background(), domain.GenerationRequest{Context: "공정 시작 버튼"})

	if resp.Success {
		t.Fatal("Success = true, want false")
	}
	if resp.Source != "remote_error" {
		t.Errorf("Source = %q, want remote_error", resp.Source)
	}
	if resp.Result == nil {
		t.Fatal("Result = nil, want labeled error result")
	}
	if !strings.HasPrefix(resp.Result.Text, "ERROR:") || !strings.HasPrefix(resp.Result.TextKo, "ERROR:") {
		t.Errorf("error texts = %q / %q, want ERROR: label", resp.Result.Text, resp.Result.TextKo)
	}
	if !strings.Contains(resp.Result.Explanation, "connection refused") {
		t.Errorf("Explanation = %q, want cause included", resp.Result.Explanation)
	}
	if resp.Error == "" {
		t.Error("Error field is empty")
	}
}

// Explicit request fields always win over inference.
func TestWriter_Generate_ExplicitFieldsKept(t *testing.T) {
	stub := &stubClient{
		result: &domain.GenerationResult{
			Text: "x", TextKo: "x", TextZh: "x", TextJa: "x",
			Explanation: "e", ExplanationKo: "e", ExplanationZh: "e", ExplanationJa: "e",
			AppliedRules: []string{"r"},
		},
	}
	w := NewWriter(
		generate.NewTemplateGenerator(),
		stub,
		textutil.New(2000),
		WriterConfig{Mode: config.ModeRemote, Provider: config.AIProviderOpenWebUI},
		zap.NewNop(),
	)

	w.Generate(context.Background(), domain.GenerationRequest{
		Context:  "압력 초과 알림",
		Category: domain.CategoryStatus,
		Unit:     domain.UnitFlow,
	})

	if stub.lastReq.Category != domain.CategoryStatus {
		t.Errorf("Category = %q, want explicit status kept", stub.lastReq.Category)
	}
	if stub.lastReq.Unit != domain.UnitFlow {
		t.Errorf("Unit = %q, want explicit flow kept", stub.lastReq.Unit)
	}
}

func TestWriter_CheckContext(t *testing.T) {
	w := NewWriter(
		generate.NewTemplateGenerator(),
		nil,
		textutil.New(10),
		WriterConfig{Mode: config.ModeTemplate, Provider: config.AIProviderOpenWebUI},
		zap.NewNop(),
	)

	if err := w.CheckContext("start"); err != nil {
		t.Errorf("CheckContext(start) = %v, want nil", err)
	}
	if err := w.CheckContext("   "); !errors.Is(err, domain.ErrEmptyContext) {
		t.Errorf("CheckContext(whitespace) = %v, want ErrEmptyContext", err)
	}
	if err := w.CheckContext(strings.Repeat("a", 11)); !errors.Is(err, domain.ErrContextTooLarge) {
		t.Errorf("CheckContext(oversized) = %v, want ErrContextTooLarge", err)
	}
}

func TestWriter_Classify(t *testing.T) {
	w := newTemplateWriter()

	got := w.Classify("  챔버 온도 설정 버튼  ")
	if got.Category != domain.CategoryParameter {
		t.Errorf("Category = %q, want parameter", got.Category)
	}
	if got.Unit != domain.UnitTemperature {
		t.Errorf("Unit = %q, want temperature", got.Unit)
	}
}

func TestWriter_Validate(t *testing.T) {
	w := newTemplateWriter()

	results := w.Validate("적절한 온도로 설정하세요")
	if len(results) != 4 {
		t.Fatalf("len(results) = %d, want 4", len(results))
	}

	for _, r := range results {
		if r.Category == domain.ValidationClarity {
			if r.Score > 80 || len(r.Issues) == 0 {
				t.Errorf("clarity = %+v, want a flagged prohibited expression", r)
			}
		}
	}
}

// The generator and validator agree: generated alert text passes its
// own validation.
func TestWriter_GeneratedTextValidates(t *testing.T) {
	w := newTemplateWriter()

	resp := w.Generate(context.Background(), domain.GenerationRequest{
		Context: "압력 초과 알림",
		Value:   "480",
	})

	for _, r := range w.Validate(resp.Result.TextKo) {
		if !r.Passed {
			t.Errorf("%s failed on generated text %q: %+v", r.Category, resp.Result.TextKo, r.Issues)
		}
	}
}
