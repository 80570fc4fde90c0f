package anonymize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	sentenceSplitRe  = regexp.MustCompile(`[.!?]+`)
	inlineContactRe  = regexp.MustCompile(`\+?[0-9][0-9 ()-]{6,}`)
)

var personalSentenceMarkers = []string{
	"years old", "born", "married", "live in", "based in", "from", "@",
}

var professionalSentenceMarkers = []string{
	"experience", "skilled", "expertise", "developer", "engineer", "manager",
	"professional", "specializ", "focus",
}

// professionalSummary keeps only summary sentences that carry professional
// signal and no personal details, joined with ". ". Dropped sentences are
// logged so reviewers can audit the redaction.
func professionalSummary(summary string, stats *types.AnonymizationStats) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	var kept []string
	for _, raw := range sentenceSplitRe.Split(summary, -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		if isProfessionalSentence(sentence) {
			kept = append(kept, sentence)
		} else {
			stats.RemovedSummaryElements = append(stats.RemovedSummaryElements, sentence)
		}
	}

	return strings.Join(kept, ". ")
}

func isProfessionalSentence(sentence string) bool {
	if len(sentence) < 10 {
		return false
	}
	lower := strings.ToLower(sentence)

	for _, marker := range personalSentenceMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	if inlineContactRe.MatchString(lower) {
		return false
	}

	for _, marker := range professionalSentenceMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
