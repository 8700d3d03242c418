package service

import (
	"fmt"
	"strings"
	"time"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor extracts plain text from PDF bytes via MuPDF.
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// pageTimeout bounds a single page extraction; a stuck page yields an empty
// page instead of hanging the whole run.
const pageTimeout = 90 * time.Second

// Extract returns the concatenated text of all pages. Pages that fail to
// extract contribute nothing but do not fail the document; only a file that
// cannot be opened at all is an extraction error.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", apperrors.NewExtractionError("failed to open PDF", err)
	}
	defer doc.Close()

	type pageResult struct {
		text string
		err  error
	}

	var text strings.Builder
	numPages := doc.NumPage()

	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("PDF extracting page", "page", pageNum+1, "total", numPages)

		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, err := doc.Text(idx)
			resultCh <- pageResult{text: t, err: err}
		}(pageNum)

		var pageText string
		select {
		case res := <-resultCh:
			if res.err != nil {
				e.logger.Warn("failed to extract text from page", "page", pageNum+1, "total", numPages, "error", res.err)
				continue
			}
			pageText = res.text
		case <-time.After(pageTimeout):
			e.logger.Warn("PDF page extraction timeout; using empty page", "page", pageNum+1, "total", numPages, "timeout_sec", int(pageTimeout.Seconds()))
			go func() { <-resultCh }() // drain so goroutine can exit
			continue
		}

		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	if numPages == 0 {
		return "", apperrors.NewExtractionError("PDF has no pages", fmt.Errorf("page count is zero"))
	}

	return text.String(), nil
}
