package service

import (
	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"

	"github.com/jdkato/prose/v2"
)

// ProseTagger tokenizes text and assigns Penn Treebank part-of-speech tags
// using the prose averaged-perceptron model. The model ships embedded with
// the library, so there is no download step; a failure to build the tagged
// document still surfaces as a tagger-unavailable error.
type ProseTagger struct {
	logger domain.Logger
}

// NewProseTagger creates a new tagger
func NewProseTagger(logger domain.Logger) *ProseTagger {
	return &ProseTagger{logger: logger}
}

// Tag returns one token per word or punctuation mark, each with its POS tag.
func (t *ProseTagger) Tag(text string) ([]domain.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, apperrors.NewTaggerUnavailableError("part-of-speech tagging failed", err)
	}

	proseTokens := doc.Tokens()
	tokens := make([]domain.Token, 0, len(proseTokens))
	for _, pt := range proseTokens {
		tokens = append(tokens, domain.Token{Text: pt.Text, Tag: pt.Tag})
	}

	t.logger.Debug("tagged document", "tokens", len(tokens))
	return tokens, nil
}
