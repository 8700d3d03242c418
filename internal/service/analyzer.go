package service

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"document-analyzer/internal/domain"
)

const (
	topAdjectiveLimit = 10
	maxChapters       = 3
)

// AnalysisService consumes a tagged token stream and produces the Report:
// total word count, adjective scoreboard, and a per-chapter breakdown. It
// implements domain.Analyzer and has no state, so identical input always
// yields an identical Report.
type AnalysisService struct {
	logger domain.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(logger domain.Logger) *AnalysisService {
	return &AnalysisService{logger: logger}
}

// Analyze builds the Report for one document.
func (s *AnalysisService) Analyze(filename string, tokens []domain.Token) *domain.Report {
	total, top := aggregate(tokens)

	report := &domain.Report{
		File:          filepath.Base(filename),
		TotalWords:    total,
		TopAdjectives: top,
	}

	for i, chapter := range splitChapters(tokens, maxChapters) {
		chTotal, chTop := aggregate(chapter)
		report.Chapters = append(report.Chapters, domain.ChapterReport{
			Name:          fmt.Sprintf("Chapter %d", i+1),
			TotalWords:    chTotal,
			TopAdjectives: chTop,
		})
	}

	s.logger.Info("analysis complete", "file", report.File, "total_words", total, "distinct_top_adjectives", len(top), "chapters", len(report.Chapters))
	return report
}

// aggregate walks the token stream once, counting alphabetic tokens and
// tallying adjectives case-insensitively. The returned scoreboard is sorted
// by descending count; equal counts keep first-occurrence order.
func aggregate(tokens []domain.Token) (int, []domain.AdjectiveCount) {
	total := 0
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, tok := range tokens {
		if tok.IsAlphabetic() {
			total++
		}
		if !tok.IsAdjective() {
			continue
		}
		key := strings.ToLower(tok.Text)
		if _, seen := counts[key]; !seen {
			firstSeen[key] = i
		}
		counts[key]++
	}

	top := make([]domain.AdjectiveCount, 0, len(counts))
	for adjective, count := range counts {
		top = append(top, domain.AdjectiveCount{Adjective: adjective, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Adjective] < firstSeen[top[j].Adjective]
	})

	if len(top) > topAdjectiveLimit {
		top = top[:topAdjectiveLimit]
	}
	return total, top
}

// splitChapters partitions the token stream into at most max word-balanced
// chunks. The last chunk absorbs the remainder.
func splitChapters(tokens []domain.Token, max int) [][]domain.Token {
	if len(tokens) == 0 || max < 1 {
		return nil
	}

	target := len(tokens) / max
	if target < 1 {
		target = 1
	}

	var chapters [][]domain.Token
	start := 0
	for i := range tokens {
		if i+1-start >= target && len(chapters) < max-1 {
			chapters = append(chapters, tokens[start:i+1])
			start = i + 1
		}
	}
	if start < len(tokens) {
		chapters = append(chapters, tokens[start:])
	}
	return chapters
}
