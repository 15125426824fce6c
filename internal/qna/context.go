package qna

import (
	"regexp"
	"strings"
)

// Section is one document's contribution to an LLM context window.
type Section struct {
	Label string
	Text  string
}

var (
	runsOfBlanks   = regexp.MustCompile(`[ \t]+`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace collapses runs of spaces and tabs to a single space,
// caps blank lines at one, and trims the result. Extracted OCR text tends to
// arrive with heavy padding that would otherwise eat the context budget.
func NormalizeWhitespace(s string) string {
	s = runsOfBlanks.ReplaceAllString(s, " ")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// BuildContext concatenates sections greedily under maxChars. Sections are
// taken in order and never split: the first one that does not fit stops the
// walk and everything after it is dropped.
func BuildContext(sections []Section, maxChars int) string {
	var b strings.Builder
	for _, s := range sections {
		text := NormalizeWhitespace(s.Text)
		if text == "" {
			continue
		}
		block := s.Label + text + "\n\n"
		if maxChars > 0 && b.Len()+len(block) > maxChars {
			break
		}
		b.WriteString(block)
	}
	return b.String()
}
