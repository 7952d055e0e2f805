// Package service contains the business logic layer.
package service

import (
	"context"
	"time"

	"github.com/ohjihoon05/ipswriter/internal/ai"
	"github.com/ohjihoon05/ipswriter/internal/classify"
	"github.com/ohjihoon05/ipswriter/internal/config"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/generate"
	"github.com/ohjihoon05/ipswriter/internal/validate"
	"github.com/ohjihoon05/ipswriter/pkg/textutil"
	"go.uber.org/zap"
)

// Writer orchestrates the text pipeline: classification, template or
// remote generation, and validation. The core calls are synchronous and
// pure; only the remote generation path can suspend or fail.
type Writer struct {
	templateGen *generate.TemplateGenerator
	aiClient    ai.Client
	normalizer  *textutil.Normalizer
	mode        config.GeneratorMode
	provider    config.AIProvider
	logger      *zap.Logger
}

// WriterConfig contains configuration for the Writer.
type WriterConfig struct {
	Mode     config.GeneratorMode
	Provider config.AIProvider
}

// NewWriter creates a new Writer with all dependencies. The AI client
// may be nil when the mode is template-only.
func NewWriter(
	templateGen *generate.TemplateGenerator,
	aiClient ai.Client,
	normalizer *textutil.Normalizer,
	cfg WriterConfig,
	logger *zap.Logger,
) *Writer {
	return &Writer{
		templateGen: templateGen,
		aiClient:    aiClient,
		normalizer:  normalizer,
		mode:        cfg.Mode,
		provider:    cfg.Provider,
		logger:      logger.Named("writer"),
	}
}

// CheckContext enforces the presentation-layer context rules: blank or
// oversized contexts are rejected before they reach generation. The
// core engine itself accepts anything.
func (w *Writer) CheckContext(text string) error {
	if w.normalizer.IsEmpty(text) {
		return domain.ErrEmptyContext
	}
	if w.normalizer.IsTooLarge(text) {
		return domain.ErrContextTooLarge
	}
	return nil
}

// Classify runs context inference over a free-text description.
func (w *Writer) Classify(text string) domain.Classification {
	return classify.Classify(w.normalizer.Normalize(text))
}

// Generate produces localized text for the request. Missing request
// fields are resolved via the classifier before dispatch so that both
// generation paths see the same parameters. A blank context is not
// rejected: the template fallback makes its uselessness visible in the
// explanation instead.
func (w *Writer) Generate(ctx context.Context, req domain.GenerationRequest) *domain.GenerationResponse {
	startTime := time.Now()
	req.Context = w.normalizer.Normalize(req.Context)
	req = w.resolve(req)

	if w.mode == config.ModeRemote && w.aiClient != nil {
		result, err := w.aiClient.Generate(ctx, req)
		if err != nil {
			// The remote collaborator is fallible: convert the failure
			// into a labeled four-language error result, never an
			// exception past this boundary.
			w.logger.Error("remote generation failed",
				zap.Error(err),
				zap.Duration("duration", time.Since(startTime)),
			)
			return &domain.GenerationResponse{
				Success:     false,
				Result:      remoteErrorResult(err),
				Error:       err.Error(),
				Source:      "remote_error",
				ProcessedAt: time.Now(),
			}
		}

		w.logger.Info("remote generation completed",
			zap.String("category", string(req.Category)),
			zap.Duration("duration", time.Since(startTime)),
		)
		return &domain.GenerationResponse{
			Success:     true,
			Result:      result,
			Source:      "remote:" + string(w.provider),
			ProcessedAt: time.Now(),
		}
	}

	result := w.templateGen.Generate(req)
	w.logger.Debug("template generation completed",
		zap.String("category", string(req.Category)),
		zap.Strings("applied_rules", result.AppliedRules),
		zap.Duration("duration", time.Since(startTime)),
	)
	return &domain.GenerationResponse{
		Success:     true,
		Result:      &result,
		Source:      "template",
		ProcessedAt: time.Now(),
	}
}

// Validate scores arbitrary text against the guidelines.
func (w *Writer) Validate(text string) []domain.ValidationResult {
	return validate.Validate(w.normalizer.Normalize(text))
}

// resolve fills missing request fields from the context, so the remote
// prompt and the local templates work from identical parameters.
func (w *Writer) resolve(req domain.GenerationRequest) domain.GenerationRequest {
	if !req.Category.IsValid() {
		req.Category = classify.InferCategory(req.Context)
	}
	if !req.SafetyLevel.IsValid() {
		req.SafetyLevel = classify.InferSafetyLevel(req.Context)
	}
	if !req.Unit.IsValid() {
		req.Unit = classify.InferUnitCategory(req.Context)
	}
	return req
}

// remoteErrorResult is the uniform four-language error result for
// remote-collaborator failures.
func remoteErrorResult(err error) *domain.GenerationResult {
	cause := err.Error()
	return &domain.GenerationResult{
		Text:          "ERROR: AI generation failed",
		TextKo:        "ERROR: AI 생성 실패",
		TextZh:        "ERROR: AI生成失败",
		TextJa:        "ERROR: AI生成失敗",
		Explanation:   "AI generation failed: " + cause + ". Check the AI provider configuration.",
		ExplanationKo: "AI 생성 실패: " + cause + ". AI 제공자 설정을 확인하세요.",
		ExplanationZh: "AI生成失败: " + cause + "。请检查AI提供商配置。",
		ExplanationJa: "AI生成失敗: " + cause + "。AIプロバイダーの設定を確認してください。",
		AppliedRules:  []string{"Error: AI Generation Failed"},
	}
}
