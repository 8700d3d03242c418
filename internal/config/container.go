package config

import (
	"document-analyzer/internal/domain"
	"document-analyzer/internal/service"
	"document-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config   domain.Config
	Logger   domain.Logger
	Extract  domain.TextExtractor
	Tagger   domain.Tagger
	Analyzer domain.Analyzer
	Runner   domain.AnalysisRunner
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg, err := NewConfig()
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	extractor := service.NewDocumentExtractor(appLogger)
	tagger := service.NewProseTagger(appLogger)
	analyzer := service.NewAnalysisService(appLogger)
	runner := service.NewAnalysisRunner(extractor, tagger, analyzer, appLogger)

	return &Container{
		Config:   cfg,
		Logger:   appLogger,
		Extract:  extractor,
		Tagger:   tagger,
		Analyzer: analyzer,
		Runner:   runner,
	}, nil
}
