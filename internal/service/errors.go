package service

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError reports a failure communicating with the model API
// (network, auth, rate limit, timeout). Retried up to the attempt budget.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("model transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports model output that is not valid JSON after
// fence-stripping.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("model output is not valid JSON: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// StructureError reports JSON that parsed but lacks required top-level keys.
// Control flow treats it the same as ParseError; the distinct type exists for
// diagnostics.
type StructureError struct {
	Missing []string
}

func (e *StructureError) Error() string {
	return "model output missing required keys: " + strings.Join(e.Missing, ", ")
}

// ArtifactError reports a failure writing the spreadsheet artifact. Never
// retried.
type ArtifactError struct {
	Err error
}

func (e *ArtifactError) Error() string { return fmt.Sprintf("write artifact: %v", e.Err) }
func (e *ArtifactError) Unwrap() error { return e.Err }

// DocumentError reports an upload that could not be read as a PDF.
type DocumentError struct {
	Err error
}

func (e *DocumentError) Error() string { return fmt.Sprintf("invalid document: %v", e.Err) }
func (e *DocumentError) Unwrap() error { return e.Err }

var (
	// ErrArtifactNotFound is returned when a download names a file that does
	// not exist in the output directory.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidArtifactName is returned when a download names a file outside
	// the generated filename pattern.
	ErrInvalidArtifactName = errors.New("invalid artifact name")
)

// isParseFailure reports whether err is a parsing or structure failure, the
// two classes that share retry and fallback behavior.
func isParseFailure(err error) bool {
	var pe *ParseError
	var se *StructureError
	return errors.As(err, &pe) || errors.As(err, &se)
}
