package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/dto"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/service"
)

type ExtractionHandler struct {
	extraction *service.ExtractionService
	logger     *zap.Logger
}

func NewExtractionHandler(extraction *service.ExtractionService, logger *zap.Logger) *ExtractionHandler {
	return &ExtractionHandler{
		extraction: extraction,
		logger:     logger,
	}
}

// ExtractFinancials godoc
// @Summary Extract financial statement data from a PDF
// @Description Upload a financial statement PDF; returns the generated spreadsheet path and extraction metadata
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Financial statement (PDF)"
// @Success 200 {object} dto.FinancialExtractionResponse
// @Failure 400 {object} dto.FinancialExtractionResponse
// @Router /api/extract-financials [post]
func (h *ExtractionHandler) ExtractFinancials(c *fiber.Ctx) error {
	content, filename, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FinancialExtractionResponse{
			Status: "failed",
			Error:  err.Error(),
		})
	}

	resp, err := h.extraction.ExtractFinancials(c.Context(), content, filename)
	if err != nil {
		var docErr *service.DocumentError
		if errors.As(err, &docErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FinancialExtractionResponse{
				Status: "failed",
				Error:  err.Error(),
			})
		}

		h.logger.Error("financial extraction failed",
			zap.String("file", filename),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		return c.JSON(dto.FinancialExtractionResponse{
			Status: "failed",
			Error:  "Failed to extract financials: " + err.Error(),
		})
	}

	return c.JSON(resp)
}

// SummarizeEarningsCall godoc
// @Summary Summarize an earnings call transcript
// @Description Upload an earnings call transcript PDF; returns a structured summary
// @Tags extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Earnings call transcript (PDF)"
// @Success 200 {object} dto.EarningsCallSummaryResponse
// @Failure 400 {object} dto.EarningsCallSummaryResponse
// @Failure 500 {object} map[string]string
// @Router /api/summarize-earnings-call [post]
func (h *ExtractionHandler) SummarizeEarningsCall(c *fiber.Ctx) error {
	content, filename, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.EarningsCallSummaryResponse{
			Status: "failed",
			Error:  err.Error(),
		})
	}

	resp, err := h.extraction.SummarizeEarningsCall(c.Context(), content, filename)
	if err != nil {
		var docErr *service.DocumentError
		if errors.As(err, &docErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.EarningsCallSummaryResponse{
				Status: "failed",
				Error:  err.Error(),
			})
		}

		h.logger.Error("earnings summary failed",
			zap.String("file", filename),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)

		// A summary that never parsed within the retry budget has no
		// fallback; it surfaces as a server error rather than a failed
		// result.
		var parseErr *service.ParseError
		var structErr *service.StructureError
		if errors.As(err, &parseErr) || errors.As(err, &structErr) {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to parse model response after retries")
		}

		return c.JSON(dto.EarningsCallSummaryResponse{
			Status: "failed",
			Error:  "Failed to summarize earnings call: " + err.Error(),
		})
	}

	return c.JSON(resp)
}

func readUpload(c *fiber.Ctx) ([]byte, string, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, "", errors.New("file is required")
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", errors.New("failed to open file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, "", errors.New("failed to read file")
	}

	return content, file.Filename, nil
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
