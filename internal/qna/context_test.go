package qna

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses spaces and tabs", "a  b\t\tc", "a b c"},
		{"caps blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"keeps single newlines", "a\nb", "a\nb"},
		{"trims", "  padded  ", "padded"},
		{"empty", "   \n  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWhitespace(tt.input))
		})
	}
}

func TestBuildContextDropsWholeSectionsOverBudget(t *testing.T) {
	sections := []Section{
		{Label: "=== Document 1 (BANK_STATEMENT) ===\n", Text: strings.Repeat("a", 100)},
		{Label: "=== Document 2 (SALARY_SLIP) ===\n", Text: strings.Repeat("b", 100)},
		{Label: "=== Document 3 (OTHER) ===\n", Text: strings.Repeat("c", 100)},
	}

	out := BuildContext(sections, 300)

	assert.Contains(t, out, "Document 1")
	assert.Contains(t, out, "Document 2")
	// The third section would overflow, so it is dropped entirely.
	assert.NotContains(t, out, "Document 3")
	assert.NotContains(t, out, strings.Repeat("c", 100))
	assert.LessOrEqual(t, len(out), 300)
}

func TestBuildContextSkipsEmptySections(t *testing.T) {
	out := BuildContext([]Section{
		{Label: "=== Document 1 (OTHER) ===\n", Text: "  \n  "},
		{Label: "=== Document 2 (OTHER) ===\n", Text: "real content"},
	}, 0)

	assert.NotContains(t, out, "Document 1")
	assert.Contains(t, out, "real content")
}

func TestBuildContextUnlimitedWhenMaxCharsZero(t *testing.T) {
	sections := []Section{
		{Label: "L1\n", Text: strings.Repeat("x", 5000)},
		{Label: "L2\n", Text: strings.Repeat("y", 5000)},
	}
	out := BuildContext(sections, 0)
	assert.Greater(t, len(out), 10000)
}
