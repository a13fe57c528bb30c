package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/SiddhanthMuragundi/Reporting-Analyst/pkg/config"
)

// DocumentModel issues one structured-extraction request to the external
// model for an embedded PDF and an instruction prompt, returning the raw
// output text.
type DocumentModel interface {
	GenerateFromDocument(ctx context.Context, document []byte, prompt string) (string, error)
}

// LLMService is the Anthropic-backed DocumentModel. The client handle is
// constructed once at process start and injected into the services that need
// it.
type LLMService struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	logger    *zap.Logger
}

func NewLLMService(cfg *config.AnthropicConfig, logger *zap.Logger) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key required")
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))

	model := cfg.Model
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 4000
	}

	return &LLMService{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
	}, nil
}

// GenerateFromDocument sends the PDF and the prompt in a single user message
// and returns the text of the reply. The configured per-call timeout cancels
// a hung request; timeouts and every other API failure surface as a
// TransportError.
func (s *LLMService) GenerateFromDocument(ctx context.Context, document []byte, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
					Data: encodePDF(document),
				}),
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	if err != nil {
		return "", &TransportError{Err: err}
	}

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text = b.Text
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &TransportError{Err: errors.New("empty model response")}
	}

	s.logger.Debug("model call complete",
		zap.String("model", s.model),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.Duration("elapsed", time.Since(start)),
	)

	return text, nil
}

// encodePDF converts raw document bytes into the transport encoding the
// Messages API expects for document blocks.
func encodePDF(document []byte) string {
	return base64.StdEncoding.EncodeToString(document)
}
