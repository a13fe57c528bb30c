package service

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/internal/models"
)

const (
	dataSheet     = "Financial Data"
	metadataSheet = "Metadata"
)

// artifactNamePattern matches exactly the filenames this service generates.
// The download endpoint refuses anything else, so a request can never resolve
// to a path outside the output directory.
var artifactNamePattern = regexp.MustCompile(`^financial_extraction_\d{8}_\d{6}\.xlsx$`)

// ArtifactWriter turns a financial statement into a spreadsheet artifact and
// returns its absolute path.
type ArtifactWriter interface {
	WriteWorkbook(stmt *models.FinancialStatement, sourceFile string) (string, error)
}

// ExportService writes two-sheet XLSX artifacts into the output directory and
// resolves download requests against it.
type ExportService struct {
	outputDir string
	logger    *zap.Logger
}

func NewExportService(outputDir string, logger *zap.Logger) (*ExportService, error) {
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolve output dir: %w", err)
	}
	return &ExportService{outputDir: abs, logger: logger}, nil
}

// OutputDir returns the absolute path of the artifact directory.
func (s *ExportService) OutputDir() string {
	return s.outputDir
}

// WriteWorkbook renders the statement into a workbook with a "Financial
// Data" sheet (one row per line item, one column per period, absent values
// left as blank cells) and a headerless "Metadata" sheet, then saves it under
// a timestamped filename. Same-second requests share a filename and the last
// writer wins.
func (s *ExportService) WriteWorkbook(stmt *models.FinancialStatement, sourceFile string) (string, error) {
	now := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return "", &ArtifactError{Err: err}
	}

	set := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	set(dataSheet, 1, 1, "Line Item")
	set(dataSheet, 2, 1, "Category")
	for i, period := range stmt.Periods {
		set(dataSheet, 3+i, 1, period)
	}

	for r, item := range stmt.LineItems {
		row := r + 2
		set(dataSheet, 1, row, item.Name)
		set(dataSheet, 2, row, item.Category)
		for i := range stmt.Periods {
			// Absent values stay blank; never written as zero.
			if v := item.Value(i); v != nil {
				set(dataSheet, 3+i, row, v)
			}
		}
	}

	_ = f.SetColWidth(dataSheet, "A", "A", 36)
	_ = f.SetColWidth(dataSheet, "B", "B", 18)

	if _, err := f.NewSheet(metadataSheet); err != nil {
		return "", &ArtifactError{Err: err}
	}
	metadata := [][2]any{
		{"Currency", stmt.Currency},
		{"Scale", stmt.Scale},
		{"Source File", sourceFile},
		{"Extracted At", now.Format(time.RFC3339)},
	}
	for r, kv := range metadata {
		set(metadataSheet, 1, r+1, kv[0])
		set(metadataSheet, 2, r+1, kv[1])
	}
	_ = f.SetColWidth(metadataSheet, "A", "B", 28)

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", &ArtifactError{Err: err}
	}

	filename := fmt.Sprintf("financial_extraction_%s.xlsx", now.Format("20060102_150405"))
	path := filepath.Join(s.outputDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", &ArtifactError{Err: err}
	}

	s.logger.Info("artifact written",
		zap.String("path", path),
		zap.Int("line_items", len(stmt.LineItems)),
		zap.Int("periods", len(stmt.Periods)),
	)

	return path, nil
}

// Resolve maps a download filename to an absolute path inside the output
// directory. Names outside the generated pattern are rejected before any
// filesystem access.
func (s *ExportService) Resolve(filename string) (string, error) {
	if !artifactNamePattern.MatchString(filename) {
		return "", ErrInvalidArtifactName
	}

	path := filepath.Join(s.outputDir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrArtifactNotFound
		}
		return "", fmt.Errorf("stat artifact: %w", err)
	}
	return path, nil
}
