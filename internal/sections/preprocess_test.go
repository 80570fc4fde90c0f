package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocess_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "first\nsecond\nthird", Preprocess("first\r\nsecond\rthird"))
}

func TestPreprocess_CollapsesBlankLineRuns(t *testing.T) {
	assert.Equal(t, "EXPERIENCE\n\nEDUCATION", Preprocess("EXPERIENCE\n\n\n\n\nEDUCATION"))
}

func TestPreprocess_CollapsesInteriorWhitespace(t *testing.T) {
	assert.Equal(t, "WORK EXPERIENCE", Preprocess("WORK \t  EXPERIENCE"))
}

func TestPreprocess_KeepsLeadingIndentation(t *testing.T) {
	// Indented header detection relies on the leading spaces surviving.
	assert.Equal(t, "    SKILLS", Preprocess("    SKILLS"))
}

func TestPreprocess_StripsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "EDUCATION", Preprocess("EDUCATION   \t"))
}

func TestPreprocess_FixesOCRArtifacts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Apostrophe accent e", "re'sume'", "résumé"},
		{"Apostrophe accent a", "a' propos", "à propos"},
		{"Space before colon", "Skills :", "Skills:"},
		{"Space before semicolon", "Java ; Python", "Java; Python"},
		{"Misread rn", "rn", "m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preprocess(tt.input))
		})
	}
}

func TestPreprocess_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Preprocess(""))
}
