package domain

// TextExtractor turns an uploaded file into plain text. Supports must reject
// unsupported extensions before any extraction is attempted.
type TextExtractor interface {
	Supports(filename string) error
	Extract(filename string, data []byte) (string, error)
}

// Tagger splits text into tokens and assigns a part-of-speech tag to each.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// Analyzer consumes the tagged token stream once and produces the Report.
// It is pure: identical input yields an identical Report.
type Analyzer interface {
	Analyze(filename string, tokens []Token) *Report
}

// AnalysisRunner dispatches a single background analysis at a time. Start
// returns a conflict error while a run is in flight; Get returns a snapshot
// of the job so callers never observe it mid-mutation.
type AnalysisRunner interface {
	Start(filename string, data []byte) (*Job, error)
	Get(id string) (*Job, bool)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
}
