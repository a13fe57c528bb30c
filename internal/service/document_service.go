package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// DocumentInfo describes an accepted upload.
type DocumentInfo struct {
	Pages int
	Size  int
}

// DocumentInspector validates an uploaded document before it is sent to the
// model.
type DocumentInspector interface {
	Inspect(content []byte, filename string) (*DocumentInfo, error)
}

// PDFInspector checks that an upload is a readable PDF and reports its page
// count.
type PDFInspector struct {
	logger *zap.Logger
}

func NewPDFInspector(logger *zap.Logger) *PDFInspector {
	return &PDFInspector{logger: logger}
}

func (s *PDFInspector) Inspect(content []byte, filename string) (*DocumentInfo, error) {
	if len(content) == 0 {
		return nil, &DocumentError{Err: errors.New("empty upload")}
	}

	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" && ext != ".pdf" {
		return nil, &DocumentError{Err: fmt.Errorf("unsupported file format: %s (only PDF is accepted)", ext)}
	}

	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return nil, &DocumentError{Err: fmt.Errorf("unreadable PDF: %w", err)}
	}
	defer doc.Close()

	info := &DocumentInfo{Pages: doc.NumPage(), Size: len(content)}

	s.logger.Debug("document accepted",
		zap.String("file", filename),
		zap.Int("pages", info.Pages),
		zap.Int("bytes", info.Size),
	)

	return info, nil
}
