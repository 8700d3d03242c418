package service

import (
	"fmt"
	"strings"

	"document-analyzer/internal/domain"
)

// RenderMarkdown formats a Report as a Markdown document: the total word
// count followed by a rank/adjective/count table, with one section per
// chapter when a chapter breakdown exists.
func RenderMarkdown(report *domain.Report) string {
	var md strings.Builder

	md.WriteString("## Document Analysis Report\n\n")
	md.WriteString(fmt.Sprintf("**File Analyzed:** `%s`\n\n", report.File))
	md.WriteString("---\n\n")

	writeSection(&md, report.TotalWords, report.TopAdjectives)

	for _, chapter := range report.Chapters {
		md.WriteString(fmt.Sprintf("## %s\n\n", chapter.Name))
		writeSection(&md, chapter.TotalWords, chapter.TopAdjectives)
	}

	return md.String()
}

func writeSection(md *strings.Builder, totalWords int, top []domain.AdjectiveCount) {
	md.WriteString("### Total Word Count\n\n")
	md.WriteString(fmt.Sprintf("The document contains **%s** words.\n\n", groupDigits(totalWords)))

	md.WriteString("### Top 10 Adjective Scoreboard\n\n")
	if len(top) == 0 {
		md.WriteString("No adjectives were found in the document to display a scoreboard.\n\n")
		return
	}

	md.WriteString("| Rank | Adjective | Count |\n")
	md.WriteString("| :--- | :-------- | :---- |\n")
	for rank, entry := range top {
		md.WriteString(fmt.Sprintf("| %d | **%s** | %d |\n", rank+1, entry.Adjective, entry.Count))
	}
	md.WriteString("\n")
}

// groupDigits renders n with thousands separators, e.g. 1234567 → 1,234,567.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	var out strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(d)
	}
	return out.String()
}
