package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/dto"
	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/models"
)

// ExtractionService runs both document-processing tasks: it drives the
// attempt loop against the model, normalizes the output, and hands financial
// results to the exporter. Attempts within one request are strictly
// sequential; requests share no mutable state.
type ExtractionService struct {
	model       DocumentModel
	inspector   DocumentInspector
	exporter    ArtifactWriter
	maxAttempts int
	logger      *zap.Logger
}

func NewExtractionService(
	model DocumentModel,
	inspector DocumentInspector,
	exporter ArtifactWriter,
	maxAttempts int,
	logger *zap.Logger,
) *ExtractionService {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &ExtractionService{
		model:       model,
		inspector:   inspector,
		exporter:    exporter,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// ExtractFinancials extracts income-statement data from the document and
// writes the spreadsheet artifact. Parse and structure failures are retried
// up to the attempt budget; if the final attempt still fails to parse, one
// best-effort fallback attempt runs with the permissive prompt. Both paths
// return the same response type.
func (s *ExtractionService) ExtractFinancials(ctx context.Context, document []byte, filename string) (*dto.FinancialExtractionResponse, error) {
	if _, err := s.inspector.Inspect(document, filename); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.logger.Info("financial extraction attempt",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.maxAttempts),
			zap.String("file", filename),
		)

		payload, err := s.attempt(ctx, document, financialExtractionPrompt, financialRequiredKeys)
		if err != nil {
			lastErr = err
			s.logger.Warn("attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			if attempt < s.maxAttempts {
				continue
			}
			if isParseFailure(err) {
				return s.extractFinancialsBestEffort(ctx, document, filename)
			}
			return nil, lastErr
		}

		stmt := models.FinancialStatementFromMap(payload)
		path, err := s.exporter.WriteWorkbook(stmt, filename)
		if err != nil {
			// Artifact failures are terminal for the request.
			return nil, err
		}

		return &dto.FinancialExtractionResponse{
			Status:   "success",
			FilePath: path,
			Metadata: &dto.ExtractionMetadata{
				Currency:       stmt.Currency,
				Scale:          stmt.Scale,
				Periods:        stmt.Periods,
				LineItemsCount: len(stmt.LineItems),
			},
		}, nil
	}

	return nil, lastErr
}

// extractFinancialsBestEffort is the one-shot fallback: a permissive prompt
// and lenient normalization that tolerates imperfect JSON.
func (s *ExtractionService) extractFinancialsBestEffort(ctx context.Context, document []byte, filename string) (*dto.FinancialExtractionResponse, error) {
	s.logger.Warn("retry budget exhausted, using best-effort fallback prompt", zap.String("file", filename))

	raw, err := s.model.GenerateFromDocument(ctx, document, financialFallbackPrompt)
	if err != nil {
		return nil, err
	}

	payload, err := normalizeLenient(raw, financialRequiredKeys)
	if err != nil {
		return nil, err
	}

	stmt := models.FinancialStatementFromMap(payload)
	path, err := s.exporter.WriteWorkbook(stmt, filename)
	if err != nil {
		return nil, err
	}

	return &dto.FinancialExtractionResponse{
		Status:   "success",
		FilePath: path,
		Metadata: &dto.ExtractionMetadata{
			Currency: stmt.Currency,
			Scale:    stmt.Scale,
			Method:   "best_effort",
		},
	}, nil
}

// SummarizeEarningsCall produces the structured earnings-call summary. There
// is no fallback path: failure on the final attempt is terminal.
func (s *ExtractionService) SummarizeEarningsCall(ctx context.Context, document []byte, filename string) (*dto.EarningsCallSummaryResponse, error) {
	if _, err := s.inspector.Inspect(document, filename); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.logger.Info("earnings summary attempt",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.maxAttempts),
			zap.String("file", filename),
		)

		payload, err := s.attempt(ctx, document, earningsSummaryPrompt, earningsRequiredKeys)
		if err != nil {
			lastErr = err
			s.logger.Warn("attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		summary := models.EarningsSummaryFromMap(payload)
		return &dto.EarningsCallSummaryResponse{
			Status:              "success",
			ManagementTone:      summary.ManagementTone,
			ConfidenceLevel:     summary.ConfidenceLevel,
			KeyPositives:        summary.KeyPositives,
			KeyConcerns:         summary.KeyConcerns,
			ForwardGuidance:     summary.ForwardGuidance,
			CapacityUtilization: summary.CapacityUtilization,
			GrowthInitiatives:   summary.GrowthInitiatives,
		}, nil
	}

	return nil, lastErr
}

// attempt runs one model call plus normalization.
func (s *ExtractionService) attempt(ctx context.Context, document []byte, prompt string, required []string) (map[string]any, error) {
	raw, err := s.model.GenerateFromDocument(ctx, document, prompt)
	if err != nil {
		return nil, err
	}
	return normalizeResponse(raw, required)
}
