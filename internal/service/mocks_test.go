package service

import (
	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"
)

// Mock implementations shared by the service package tests.

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}

// fakeFormatExtractor stands in for the PDF/DOCX extractors in dispatch tests.
type fakeFormatExtractor struct {
	text   string
	err    error
	called int
}

func (f *fakeFormatExtractor) Extract(data []byte) (string, error) {
	f.called++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeExtractor implements domain.TextExtractor for runner tests. A non-nil
// release channel blocks Extract until the channel is closed, so tests can
// observe the runner mid-flight.
type fakeExtractor struct {
	text    string
	err     error
	release chan struct{}
}

func (f *fakeExtractor) Supports(filename string) error { return nil }

func (f *fakeExtractor) Extract(filename string, data []byte) (string, error) {
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeTagger struct {
	tokens []domain.Token
	err    error
}

func (f *fakeTagger) Tag(text string) ([]domain.Token, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

var errUnreadable = apperrors.NewExtractionError("failed to open PDF", nil)
