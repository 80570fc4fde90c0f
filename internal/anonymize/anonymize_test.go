package anonymize

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredResume = `SUMMARY
Experienced engineer.

EXPERIENCE
Software Engineer
Acme Corp
January 2020 - December 2022
- Contact me at john@example.com for references
- Developed APIs

EDUCATION
Bachelor of Science
State University
Graduated: 2016`

func TestAnonymize_NilConfig(t *testing.T) {
	_, _, err := Anonymize("some text", nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

func TestAnonymize_EmptyText(t *testing.T) {
	result, stats, err := Anonymize("   ", types.StandardConfig())

	require.NoError(t, err)
	assert.Empty(t, result)
	require.NotNil(t, stats)
}

func TestAnonymize_StandardDropsPersonalSections(t *testing.T) {
	result, stats, err := Anonymize(structuredResume, types.StandardConfig())
	require.NoError(t, err)

	assert.NotContains(t, result, "Experienced engineer")
	assert.Contains(t, result, "EXPERIENCE")
	assert.Contains(t, result, "Acme Corp")
	assert.Contains(t, result, "EDUCATION")

	assert.True(t, stats.RemovedSections["summary"])
	assert.True(t, stats.KeptSections["experience"])
	assert.True(t, stats.KeptSections["education"])
	assert.Greater(t, stats.RemovedCharacterCount, 0)
}

func TestAnonymize_ScrubsLeakedEmail(t *testing.T) {
	result, stats, err := Anonymize(structuredResume, types.StandardConfig())
	require.NoError(t, err)

	assert.NotContains(t, result, "john@example.com")
	assert.NotContains(t, result, "@")
	assert.Contains(t, result, "[EMAIL_REMOVED]")
	assert.Contains(t, stats.AnonymizedItems, "EMAIL: john@example.com")
}

func TestAnonymize_KeepsEmploymentPeriods(t *testing.T) {
	// Year spans look like phone numbers to the greedy scrubber but are
	// professional content.
	text := `SUMMARY
Seasoned backend developer.

EXPERIENCE
Backend Developer
Initech LLC
2018 - 2021
- Developed the billing platform

EDUCATION
Master of Science
Tech Institute
Graduated: 2017`

	result, _, err := Anonymize(text, types.StandardConfig())
	require.NoError(t, err)

	assert.Contains(t, result, "2018 - 2021")
	assert.NotContains(t, result, "[PHONE_REMOVED]")
}

func TestAnonymize_ConservativeKeepsCleanedSummary(t *testing.T) {
	result, _, err := Anonymize(structuredResume, types.ConservativeConfig())
	require.NoError(t, err)

	assert.Contains(t, result, "PROFESSIONAL SUMMARY")
	assert.Contains(t, result, "Experienced engineer")
}

func TestAnonymize_FallbackOnUnstructuredText(t *testing.T) {
	lines := []string{
		"John Smith",
		"john.smith@example.com",
		"Senior Software Engineer at a large financial services firm",
		"I am 35 years old and love hiking on weekends",
		"Developed microservices with Java and Docker for payments",
		"2015 - 2020 worked on various backend reporting systems",
		"Led a team of engineers through three platform migrations",
	}
	text := strings.Join(lines, "\n")
	require.Greater(t, len(text), 200, "fallback requires a long degenerate summary")

	result, stats, err := Anonymize(text, types.StandardConfig())
	require.NoError(t, err)

	assert.Contains(t, result, "Senior Software Engineer")
	assert.Contains(t, result, "Developed microservices")
	assert.NotContains(t, result, "John Smith")
	assert.NotContains(t, result, "@")
	assert.NotContains(t, result, "years old")
	assert.Contains(t, stats.AnonymizedItems, "FALLBACK: Used simple section detection")
}

func TestAnonymize_NoProfessionalContent(t *testing.T) {
	lines := []string{
		"Pat Jones",
		"I am 29 years old and live in Lyon with my family and our two dogs",
		"In my free time I enjoy photography, long hikes and playing the guitar",
		"You can reach me at pat.jones@example.com or through my personal website",
	}
	text := strings.Join(lines, "\n")
	require.Greater(t, len(text), 200)

	result, _, err := Anonymize(text, types.StandardConfig())
	require.NoError(t, err)

	assert.Contains(t, result, "No professional content found after anonymization.")
	assert.NotContains(t, result, "@")
	assert.NotContains(t, result, "Pat Jones")
}

func TestScrubAll(t *testing.T) {
	text := `John Smith
john.smith@example.com
555-123-4567
linkedin.com/in/john-smith

EXPERIENCE
John Smith led the team at Acme.`

	result := ScrubAll(text)

	assert.NotContains(t, result, "John Smith")
	assert.NotContains(t, result, "john.smith@example.com")
	assert.NotContains(t, result, "555-123-4567")
	assert.NotContains(t, result, "linkedin.com/in/john-smith")

	assert.Contains(t, result, "[NAME]")
	assert.Contains(t, result, "[EMAIL]")
	assert.Contains(t, result, "[PHONE]")
	assert.Contains(t, result, "[LINKEDIN]")
	assert.Contains(t, result, "Acme")
}

func TestScrubAll_EmptyText(t *testing.T) {
	assert.Empty(t, ScrubAll("  "))
}

func TestProfessionalSummary(t *testing.T) {
	stats := types.NewAnonymizationStats()
	summary := "Skilled engineer with a decade of experience. I am 40 years old. Focused on distributed systems expertise."

	result := professionalSummary(summary, stats)

	assert.Contains(t, result, "Skilled engineer")
	assert.Contains(t, result, "distributed systems expertise")
	assert.NotContains(t, result, "years old")
	assert.Len(t, stats.RemovedSummaryElements, 1)
}

func TestReconstruct_SectionOrder(t *testing.T) {
	cleaned := map[string]string{
		"skills":     "Java, Python",
		"experience": "Software Engineer at Acme",
		"zcustom":    "Leftover content",
		"empty":      "   ",
	}

	result := reconstruct(cleaned)

	expIdx := strings.Index(result, "EXPERIENCE")
	skillsIdx := strings.Index(result, "SKILLS")
	customIdx := strings.Index(result, "ZCUSTOM")

	require.NotEqual(t, -1, expIdx)
	require.NotEqual(t, -1, skillsIdx)
	require.NotEqual(t, -1, customIdx)
	assert.Less(t, expIdx, skillsIdx)
	assert.Less(t, skillsIdx, customIdx)
	assert.NotContains(t, result, "EMPTY")
}
