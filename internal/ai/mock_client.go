// Package ai provides the remote text-generation client interface and
// implementations.
package ai

import (
	"context"

	"github.com/ohjihoon05/ipswriter/internal/domain"
	"go.uber.org/zap"
)

// MockClient implements the Client interface for testing and offline
// development.
type MockClient struct {
	logger *zap.Logger
}

// NewMockClient creates a new mock AI client.
func NewMockClient(logger *zap.Logger) *MockClient {
	return &MockClient{
		logger: logger.Named("mock_ai_client"),
	}
}

// Generate returns a canned deterministic result.
func (c *MockClient) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	c.logger.Debug("mock remote generation", zap.String("category", string(req.Category)))

	return &domain.GenerationResult{
		Text:          "System",
		TextKo:        "시스템",
		TextZh:        "系统",
		TextJa:        "システム",
		Explanation:   "Mock response. Set AI_MOCK_MODE=false and configure AI_API_KEY for real remote generation.",
		ExplanationKo: "모의 응답입니다. 실제 원격 생성을 사용하려면 AI_MOCK_MODE=false로 설정하고 AI_API_KEY를 구성하세요.",
		ExplanationZh: "模拟响应。要使用真实远程生成，请设置AI_MOCK_MODE=false并配置AI_API_KEY。",
		ExplanationJa: "モック応答です。実際のリモート生成を使用するには、AI_MOCK_MODE=falseに設定しAI_API_KEYを構成してください。",
		AppliedRules:  []string{"Mock: Offline mode"},
	}, nil
}

// HealthCheck always succeeds for the mock client.
func (c *MockClient) HealthCheck(ctx context.Context) error {
	return nil
}
