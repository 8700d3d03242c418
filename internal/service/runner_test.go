package service

import (
	"errors"
	"testing"
	"time"

	"document-analyzer/internal/domain"
	apperrors "document-analyzer/pkg/errors"
)

func newTestRunner(extractor domain.TextExtractor, tagger domain.Tagger) *AnalysisRunner {
	return NewAnalysisRunner(extractor, tagger, NewAnalysisService(&nopLogger{}), &nopLogger{})
}

// waitForFinish polls the runner until the job leaves the analyzing state.
func waitForFinish(t *testing.T, runner *AnalysisRunner, id string) *domain.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := runner.Get(id)
		if !ok {
			t.Fatalf("job %s disappeared", id)
		}
		if job.State != domain.JobStateAnalyzing {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish in time", id)
	return nil
}

func TestRunner_SuccessfulRun(t *testing.T) {
	extractor := &fakeExtractor{text: "The quick brown fox."}
	tagger := &fakeTagger{tokens: foxDogTokens()}
	runner := newTestRunner(extractor, tagger)

	job, err := runner.Start("sample.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.State != domain.JobStateAnalyzing {
		t.Fatalf("expected state %s, got %s", domain.JobStateAnalyzing, job.State)
	}

	done := waitForFinish(t, runner, job.ID)
	if done.State != domain.JobStateDone {
		t.Fatalf("expected state %s, got %s (error: %s)", domain.JobStateDone, done.State, done.Error)
	}
	if done.Report == nil || done.Report.TotalWords != 8 {
		t.Fatalf("unexpected report: %+v", done.Report)
	}
	if done.Markdown == "" {
		t.Fatal("expected a rendered markdown report")
	}
	if done.Error != "" {
		t.Fatalf("expected no error, got %s", done.Error)
	}
}

func TestRunner_RejectsSecondTriggerWhileRunning(t *testing.T) {
	release := make(chan struct{})
	extractor := &fakeExtractor{text: "text", release: release}
	runner := newTestRunner(extractor, &fakeTagger{})

	job, err := runner.Start("first.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := runner.Start("second.pdf", nil); err == nil {
		t.Fatal("expected conflict error for second trigger")
	} else if apperrors.TypeOf(err) != apperrors.ErrorTypeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}

	close(release)
	waitForFinish(t, runner, job.ID)

	// Once the first run completes, a new one is accepted.
	if _, err := runner.Start("third.pdf", nil); err != nil {
		t.Fatalf("expected third trigger to be accepted, got %v", err)
	}
}

func TestRunner_ExtractionFailureSurfacesOnJob(t *testing.T) {
	runner := newTestRunner(&fakeExtractor{err: errUnreadable}, &fakeTagger{})

	job, err := runner.Start("broken.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := waitForFinish(t, runner, job.ID)
	if done.State != domain.JobStateError {
		t.Fatalf("expected state %s, got %s", domain.JobStateError, done.State)
	}
	if done.Error == "" {
		t.Fatal("expected a user-visible error message")
	}
	if done.Report != nil {
		t.Fatalf("expected no report on failure, got %+v", done.Report)
	}
}

func TestRunner_TaggerFailureSurfacesOnJob(t *testing.T) {
	tagger := &fakeTagger{err: apperrors.NewTaggerUnavailableError("model missing", errors.New("no resources"))}
	runner := newTestRunner(&fakeExtractor{text: "some text"}, tagger)

	job, err := runner.Start("doc.docx", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := waitForFinish(t, runner, job.ID)
	if done.State != domain.JobStateError {
		t.Fatalf("expected state %s, got %s", domain.JobStateError, done.State)
	}
}

func TestRunner_PreviousJobClearedOnNewRun(t *testing.T) {
	runner := newTestRunner(&fakeExtractor{text: "text"}, &fakeTagger{tokens: foxDogTokens()})

	first, err := runner.Start("first.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForFinish(t, runner, first.ID)

	second, err := runner.Start("second.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForFinish(t, runner, second.ID)

	if _, ok := runner.Get(first.ID); ok {
		t.Fatal("expected the first job to be dropped after a new run started")
	}
}

func TestRunner_GetReturnsSnapshot(t *testing.T) {
	runner := newTestRunner(&fakeExtractor{text: "text"}, &fakeTagger{tokens: foxDogTokens()})

	job, err := runner.Start("doc.pdf", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	done := waitForFinish(t, runner, job.ID)

	// Mutating the returned job must not leak into the runner's copy.
	done.State = domain.JobStateError
	again, _ := runner.Get(job.ID)
	if again.State != domain.JobStateDone {
		t.Fatalf("snapshot mutation leaked into runner state: %s", again.State)
	}
}
