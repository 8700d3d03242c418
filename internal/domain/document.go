package domain

import (
	"strings"
	"time"
	"unicode"
)

// Document represents a selected file and the plain text extracted from it.
// It lives only for the duration of one analysis run.
type Document struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

// Token is a single word (or punctuation mark) with its part-of-speech tag.
// Tags follow the Penn Treebank tag set emitted by the tagger.
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// IsAlphabetic reports whether every rune of the token is a letter.
// Only alphabetic tokens count toward the word total; punctuation and
// numbers are excluded.
func (t Token) IsAlphabetic() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAdjective reports whether the token's tag belongs to the adjective
// group: JJ, JJR and JJS (base, comparative, superlative).
func (t Token) IsAdjective() bool {
	return strings.HasPrefix(t.Tag, "JJ")
}

// AdjectiveCount is one row of the adjective scoreboard.
type AdjectiveCount struct {
	Adjective string `json:"adjective"`
	Count     int    `json:"count"`
}

// ChapterReport holds the per-chapter breakdown of a document. Chapters are
// word-balanced slices of the token stream, not structural chapters.
type ChapterReport struct {
	Name          string           `json:"name"`
	TotalWords    int              `json:"total_words"`
	TopAdjectives []AdjectiveCount `json:"top_adjectives"`
}

// Report is the final output of one analysis run: the total word count and
// the top adjectives by descending frequency, ties broken by first
// occurrence. Immutable once produced.
type Report struct {
	File          string           `json:"file"`
	TotalWords    int              `json:"total_words"`
	TopAdjectives []AdjectiveCount `json:"top_adjectives"`
	Chapters      []ChapterReport  `json:"chapters,omitempty"`
}

// JobState is the lifecycle state of a background analysis.
type JobState string

const (
	JobStateAnalyzing JobState = "analyzing"
	JobStateDone      JobState = "done"
	JobStateError     JobState = "error"
)

// JobStage names the pipeline step currently running, for progress display.
type JobStage string

const (
	StageExtracting  JobStage = "extracting"
	StageTagging     JobStage = "tagging"
	StageAggregating JobStage = "aggregating"
)

// Job tracks one background analysis run. Only the finished Report (or the
// error message) crosses back to the interactive surface; everything else
// the pipeline produces stays inside the run.
type Job struct {
	ID    string   `json:"id"`
	File  string   `json:"file"`
	State JobState `json:"state"`
	Stage JobStage `json:"stage,omitempty"`

	Report   *Report `json:"report,omitempty"`
	Markdown string  `json:"markdown,omitempty"`
	Error    string  `json:"error,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty"`
}
