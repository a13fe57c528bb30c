package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/api"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/api/handlers"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/service"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/pkg/config"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Research Portal service")

	// Initialize services
	llmService, err := service.NewLLMService(&cfg.Anthropic, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}

	inspector := service.NewPDFInspector(appLogger)

	exportService, err := service.NewExportService(cfg.Extraction.OutputDir, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize export service", zap.Error(err))
	}

	extractionService := service.NewExtractionService(
		llmService,
		inspector,
		exportService,
		cfg.Extraction.MaxAttempts,
		appLogger,
	)

	// Initialize handlers
	extractionHandler := handlers.NewExtractionHandler(extractionService, appLogger)
	downloadHandler := handlers.NewDownloadHandler(exportService, appLogger)

	// Setup router
	app := api.SetupRouter(extractionHandler, downloadHandler, &cfg.Server)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting",
			zap.String("address", addr),
			zap.String("output_dir", exportService.OutputDir()),
		)
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
