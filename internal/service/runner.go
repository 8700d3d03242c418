package service

import (
	"sync"
	"time"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"

	"github.com/google/uuid"
)

// AnalysisRunner runs the extraction → tagging → aggregation pipeline in a
// single background goroutine so the HTTP surface stays responsive. Exactly
// one analysis may be in flight; a second trigger is rejected, not queued.
// Jobs are held in memory only and are cleared when the next run starts.
type AnalysisRunner struct {
	extractor domain.TextExtractor
	tagger    domain.Tagger
	analyzer  domain.Analyzer
	logger    domain.Logger

	mu     sync.Mutex
	active string // id of the in-flight job, empty when idle
	jobs   map[string]*domain.Job
}

// NewAnalysisRunner creates a new runner
func NewAnalysisRunner(extractor domain.TextExtractor, tagger domain.Tagger, analyzer domain.Analyzer, logger domain.Logger) *AnalysisRunner {
	return &AnalysisRunner{
		extractor: extractor,
		tagger:    tagger,
		analyzer:  analyzer,
		logger:    logger,
		jobs:      make(map[string]*domain.Job),
	}
}

// Start dispatches a background analysis of the given file and returns the
// new job. It fails with a conflict error while another run is in flight.
func (r *AnalysisRunner) Start(filename string, data []byte) (*domain.Job, error) {
	r.mu.Lock()
	if r.active != "" {
		r.mu.Unlock()
		return nil, apperrors.NewConflictError("an analysis is already running")
	}

	// Previous results are not kept across runs; only the run being
	// started (and, until then, the one just finished) is retrievable.
	for id := range r.jobs {
		delete(r.jobs, id)
	}

	job := &domain.Job{
		ID:        uuid.New().String(),
		File:      filename,
		State:     domain.JobStateAnalyzing,
		Stage:     domain.StageExtracting,
		StartedAt: time.Now(),
	}
	r.jobs[job.ID] = job
	r.active = job.ID
	snapshot := *job
	r.mu.Unlock()

	r.logger.Info("analysis started", "job", job.ID, "file", filename, "size", len(data))
	go r.run(job.ID, filename, data)

	return &snapshot, nil
}

// Get returns a snapshot of the job with the given id.
func (r *AnalysisRunner) Get(id string) (*domain.Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, false
	}
	snapshot := *job
	return &snapshot, true
}

// run executes the pipeline. All failures land on the job record; nothing
// is swallowed and nothing can crash the server.
func (r *AnalysisRunner) run(id, filename string, data []byte) {
	text, err := r.extractor.Extract(filename, data)
	if err != nil {
		r.fail(id, err)
		return
	}

	r.setStage(id, domain.StageTagging)
	tokens, err := r.tagger.Tag(text)
	if err != nil {
		r.fail(id, err)
		return
	}

	r.setStage(id, domain.StageAggregating)
	report := r.analyzer.Analyze(filename, tokens)
	r.finish(id, report)
}

func (r *AnalysisRunner) setStage(id string, stage domain.JobStage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.Stage = stage
	}
}

func (r *AnalysisRunner) finish(id string, report *domain.Report) {
	markdown := RenderMarkdown(report)

	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.State = domain.JobStateDone
	job.Stage = ""
	job.Report = report
	job.Markdown = markdown
	job.FinishedAt = time.Now()
	r.active = ""

	r.logger.Info("analysis finished", "job", id, "file", job.File, "total_words", report.TotalWords)
}

func (r *AnalysisRunner) fail(id string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.State = domain.JobStateError
	job.Stage = ""
	job.Error = apperrors.UserMessage(err)
	job.FinishedAt = time.Now()
	r.active = ""

	r.logger.Error("analysis failed", err, "job", id, "file", job.File)
}
