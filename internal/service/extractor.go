// Package service implements the analysis pipeline: text extraction,
// part-of-speech tagging, aggregation and the background runner.
package service

import (
	"path/filepath"
	"strings"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"
)

// formatExtractor extracts text from the raw bytes of one document format.
type formatExtractor interface {
	Extract(data []byte) (string, error)
}

// DocumentExtractor dispatches extraction on the file extension. It
// implements domain.TextExtractor.
type DocumentExtractor struct {
	pdf    formatExtractor
	docx   formatExtractor
	logger domain.Logger
}

// NewDocumentExtractor creates an extractor wired with the PDF and DOCX
// format extractors.
func NewDocumentExtractor(logger domain.Logger) *DocumentExtractor {
	return &DocumentExtractor{
		pdf:    NewPDFExtractor(logger),
		docx:   NewDOCXExtractor(logger),
		logger: logger,
	}
}

// Supports returns nil when the filename carries a supported extension, and
// an unsupported-format error otherwise. It never touches file contents, so
// rejection always happens before any extraction attempt.
func (e *DocumentExtractor) Supports(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf", ".docx":
		return nil
	default:
		return apperrors.NewUnsupportedFormatError(ext)
	}
}

// Extract returns the plain text of the document.
func (e *DocumentExtractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e.logger.Debug("extracting document", "file", filepath.Base(filename), "format", ext, "size", len(data))

	switch ext {
	case ".pdf":
		return e.pdf.Extract(data)
	case ".docx":
		return e.docx.Extract(data)
	default:
		return "", apperrors.NewUnsupportedFormatError(ext)
	}
}
