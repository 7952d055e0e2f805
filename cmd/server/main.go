// IPS Guideline Writer - Server Entry Point
//
// This is the main entry point for the IPS guideline text service.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ohjihoon05/ipswriter/internal/ai"
	"github.com/ohjihoon05/ipswriter/internal/catalog"
	"github.com/ohjihoon05/ipswriter/internal/config"
	"github.com/ohjihoon05/ipswriter/internal/generate"
	"github.com/ohjihoon05/ipswriter/internal/handler"
	"github.com/ohjihoon05/ipswriter/internal/logger"
	"github.com/ohjihoon05/ipswriter/internal/service"
	"github.com/ohjihoon05/ipswriter/pkg/textutil"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	// Determine if we're in development mode
	isDev := os.Getenv("GIN_MODE") != "release"

	// Initialize logger
	zapLogger, err := logger.New(isDev)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting IPS guideline writer",
		zap.Bool("development", isDev),
	)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	zapLogger.Info("configuration loaded",
		zap.String("port", cfg.Server.Port),
		zap.String("generator_mode", string(cfg.Generation.Mode)),
		zap.String("ai_provider", string(cfg.AI.Provider)),
		zap.Bool("mock_mode", cfg.AI.MockMode),
	)

	// Initialize the AI client for remote generation
	var aiClient ai.Client
	if cfg.Generation.Mode == config.ModeRemote {
		aiClient = buildAIClient(cfg, zapLogger)
	}

	// Load the component-template catalog
	templateCatalog, err := catalog.Load()
	if err != nil {
		zapLogger.Fatal("failed to load template catalog", zap.Error(err))
	}

	// Initialize the writer service
	writerSvc := service.NewWriter(
		generate.NewTemplateGenerator(),
		aiClient,
		textutil.New(cfg.Generation.MaxContextSize),
		service.WriterConfig{
			Mode:     cfg.Generation.Mode,
			Provider: cfg.AI.Provider,
		},
		zapLogger,
	)

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(writerSvc, zapLogger)
	validateHandler := handler.NewValidateHandler(writerSvc, zapLogger)
	classifyHandler := handler.NewClassifyHandler(writerSvc, zapLogger)
	templatesHandler := handler.NewTemplatesHandler(templateCatalog, zapLogger)
	healthHandler := handler.NewHealthHandler(zapLogger)
	readyHandler := handler.NewReadyHandler(aiClient, zapLogger)

	// Setup Gin router
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Apply middleware
	router.Use(handler.RecoveryMiddleware(zapLogger))
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.LoggingMiddleware(zapLogger))
	router.Use(handler.CORSMiddleware())

	// Register routes
	router.GET("/health", healthHandler.Handle)
	router.GET("/ready", readyHandler.Handle)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/generate", generateHandler.Handle)
		v1.POST("/validate", validateHandler.Handle)
		v1.POST("/classify", classifyHandler.Handle)
		v1.GET("/templates", templatesHandler.Handle)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")

	// Give the server 10 seconds to finish processing
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}

// buildAIClient constructs the configured provider client.
func buildAIClient(cfg *config.Config, zapLogger *zap.Logger) ai.Client {
	if cfg.AI.MockMode {
		zapLogger.Warn("running in mock mode - AI responses are simulated")
		return ai.NewMockClient(zapLogger)
	}

	promptBuilder, err := ai.NewDefaultPromptBuilder()
	if err != nil {
		zapLogger.Fatal("failed to create prompt builder", zap.Error(err))
	}
	validator := ai.NewDefaultValidator()

	switch cfg.AI.Provider {
	case config.AIProviderAnthropic:
		return ai.NewAnthropicClient(&cfg.AI, promptBuilder, validator, zapLogger)
	default:
		return ai.NewOpenWebUIClient(&cfg.AI, promptBuilder, validator, zapLogger)
	}
}
