// Package handler contains HTTP handlers for the API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ohjihoon05/ipswriter/internal/catalog"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/service"
	"go.uber.org/zap"
)

// GenerateHandler handles text-generation requests.
type GenerateHandler struct {
	writer *service.Writer
	logger *zap.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(writer *service.Writer, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{
		writer: writer,
		logger: logger.Named("generate_handler"),
	}
}

// Handle processes POST /api/v1/generate requests.
func (h *GenerateHandler) Handle(c *gin.Context) {
	startTime := time.Now()
	logger := h.logger.With(zap.String("request_id", c.GetString("request_id")))

	var req domain.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, domain.GenerationResponse{
			Success:     false,
			Error:       "Invalid request body: " + err.Error(),
			ProcessedAt: time.Now(),
		})
		return
	}

	if err := h.writer.CheckContext(req.Context); err != nil {
		logger.Warn("rejected context", zap.Error(err))
		c.JSON(http.StatusBadRequest, domain.GenerationResponse{
			Success:     false,
			Error:       err.Error(),
			ProcessedAt: time.Now(),
		})
		return
	}

	response := h.writer.Generate(c.Request.Context(), req)

	logger.Info("generation completed",
		zap.Bool("success", response.Success),
		zap.String("source", response.Source),
		zap.Duration("duration", time.Since(startTime)),
	)

	if response.Success {
		c.JSON(http.StatusOK, response)
	} else {
		c.JSON(http.StatusUnprocessableEntity, response)
	}
}

// ValidationRequest is the body of a validation request.
type ValidationRequest struct {
	Text string `json:"text" binding:"required"`
}

// ValidateHandler handles guideline-validation requests.
type ValidateHandler struct {
	writer *service.Writer
	logger *zap.Logger
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(writer *service.Writer, logger *zap.Logger) *ValidateHandler {
	return &ValidateHandler{
		writer: writer,
		logger: logger.Named("validate_handler"),
	}
}

// Handle processes POST /api/v1/validate requests.
func (h *ValidateHandler) Handle(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", c.GetString("request_id")))

	var req ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	results := h.writer.Validate(req.Text)

	passed := true
	for _, r := range results {
		if !r.Passed {
			passed = false
			break
		}
	}

	logger.Debug("validation completed", zap.Bool("passed", passed))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"passed":  passed,
		"results": results,
	})
}

// ClassifyRequest is the body of a classification request.
type ClassifyRequest struct {
	Context string `json:"context" binding:"required"`
}

// ClassifyHandler handles context-classification requests.
type ClassifyHandler struct {
	writer *service.Writer
	logger *zap.Logger
}

// NewClassifyHandler creates a new ClassifyHandler.
func NewClassifyHandler(writer *service.Writer, logger *zap.Logger) *ClassifyHandler {
	return &ClassifyHandler{
		writer: writer,
		logger: logger.Named("classify_handler"),
	}
}

// Handle processes POST /api/v1/classify requests.
func (h *ClassifyHandler) Handle(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", c.GetString("request_id")))

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	classification := h.writer.Classify(req.Context)
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"classification": classification,
	})
}

// TemplatesHandler serves the component-template catalog.
type TemplatesHandler struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewTemplatesHandler creates a new TemplatesHandler.
func NewTemplatesHandler(cat *catalog.Catalog, logger *zap.Logger) *TemplatesHandler {
	return &TemplatesHandler{
		catalog: cat,
		logger:  logger.Named("templates_handler"),
	}
}

// Handle processes GET /api/v1/templates requests. An optional
// "category" query parameter filters the catalog.
func (h *TemplatesHandler) Handle(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		category := domain.ComponentCategory(raw)
		if !category.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Unknown category: " + raw,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"templates": h.catalog.ByCategory(category),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": h.catalog.All(),
	})
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger *zap.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger.Named("health_handler"),
	}
}

// Handle processes GET /health requests.
func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadyChecker reports whether a downstream collaborator is reachable.
type ReadyChecker interface {
	HealthCheck(ctx context.Context) error
}

// ReadyHandler handles readiness check requests.
type ReadyHandler struct {
	checker ReadyChecker
	logger  *zap.Logger
}

// NewReadyHandler creates a new ReadyHandler. The checker may be nil
// when the server runs in template-only mode.
func NewReadyHandler(checker ReadyChecker, logger *zap.Logger) *ReadyHandler {
	return &ReadyHandler{
		checker: checker,
		logger:  logger.Named("ready_handler"),
	}
}

// Handle processes GET /ready requests.
func (h *ReadyHandler) Handle(c *gin.Context) {
	if h.checker != nil {
		if err := h.checker.HealthCheck(c.Request.Context()); err != nil {
			h.logger.Warn("readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  err.Error(),
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
