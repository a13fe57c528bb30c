package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/service"
)

type DownloadHandler struct {
	exports *service.ExportService
	logger  *zap.Logger
}

func NewDownloadHandler(exports *service.ExportService, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		exports: exports,
		logger:  logger,
	}
}

// Download godoc
// @Summary Download a generated spreadsheet
// @Description Stream a previously generated extraction artifact as an attachment
// @Tags artifacts
// @Produce application/octet-stream
// @Param filename path string true "Artifact filename"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/download/{filename} [get]
func (h *DownloadHandler) Download(c *fiber.Ctx) error {
	filename := c.Params("filename")

	path, err := h.exports.Resolve(filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidArtifactName):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid filename",
			})
		case errors.Is(err, service.ErrArtifactNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "File not found",
			})
		default:
			h.logger.Error("artifact lookup failed", zap.String("filename", filename), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read file",
			})
		}
	}

	return c.Download(path, filename)
}
