// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"
)

// AnalysisHandler handles analysis-related HTTP requests
type AnalysisHandler struct {
	runner      domain.AnalysisRunner
	extractor   domain.TextExtractor
	maxFileSize int64
	logger      domain.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(runner domain.AnalysisRunner, extractor domain.TextExtractor, maxFileSize int64, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		runner:      runner,
		extractor:   extractor,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// analyzeRequest carries the validated upload metadata.
type analyzeRequest struct {
	Filename string
}

// Validate checks the request fields.
func (r analyzeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required, validation.Length(1, 512)),
	)
}

// CreateAnalysis accepts a multipart upload (field "file") and dispatches a
// background analysis. It answers 202 with the job, 400 for a missing file
// or unsupported extension, and 409 while another analysis is running.
func (h *AnalysisHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	req := analyzeRequest{Filename: header.Filename}
	if err := req.Validate(); err != nil {
		writeAppError(w, apperrors.NewValidationError("invalid upload", err.Error()))
		return
	}

	// Reject unsupported extensions up front; the payload is not read at
	// all for a .txt or anything else outside the supported set.
	if err := h.extractor.Supports(header.Filename); err != nil {
		h.logger.Warn("rejected upload with unsupported extension", "file", header.Filename)
		writeAppError(w, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeAppError(w, apperrors.NewValidationError("failed to read upload", err.Error()))
		return
	}

	job, err := h.runner.Start(header.Filename, data)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, job)
}

// GetAnalysis returns the current snapshot of one analysis job: its state,
// the pipeline stage while running, and the report or error once finished.
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "analysis ID is required")
		return
	}

	job, ok := h.runner.Get(id)
	if !ok {
		writeAppError(w, apperrors.NewNotFoundError("analysis not found"))
		return
	}

	writeJSON(w, http.StatusOK, job)
}
