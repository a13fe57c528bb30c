package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/api/handlers"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/pkg/config"
)

func SetupRouter(
	extractionHandler *handlers.ExtractionHandler,
	downloadHandler *handlers.DownloadHandler,
	cfg *config.ServerConfig,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Research Portal API",
		BodyLimit:    cfg.MaxUploadMB * 1024 * 1024,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "online",
			"service": "Research Portal API",
			"endpoints": fiber.Map{
				"extract_financials": "/api/extract-financials",
				"summarize_earnings": "/api/summarize-earnings-call",
				"download":           "/api/download/{filename}",
			},
		})
	})

	api := app.Group("/api")
	api.Post("/extract-financials", extractionHandler.ExtractFinancials)
	api.Post("/summarize-earnings-call", extractionHandler.SummarizeEarningsCall)
	api.Get("/download/:filename", downloadHandler.Download)

	return app
}
