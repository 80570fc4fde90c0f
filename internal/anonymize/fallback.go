package anonymize

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// fallbackHeaderRes are simple whole-line header patterns used when the
// confidence-scored splitter degenerates.
var fallbackHeaderRes = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`(?i)^(work\s+experience|experience|professional\s+experience)$`), sections.KeyExperience},
	{regexp.MustCompile(`(?i)^(education|academic\s+background|formation)$`), sections.KeyEducation},
	{regexp.MustCompile(`(?i)^(skills|technical\s+skills|comp[eé]tences)$`), sections.KeySkills},
	{regexp.MustCompile(`(?i)^(summary|profile|profil|objective|about)$`), sections.KeySummary},
}

var (
	inlineEmailRe   = regexp.MustCompile(`@`)
	inlinePhoneRe   = regexp.MustCompile(`\+?[0-9][0-9 ()-]{8,}`)
	inlineYearsRe   = regexp.MustCompile(`\d{4}\s*[-–]\s*(\d{4}|present|current)`)
	bareNameRe      = regexp.MustCompile(`^[a-zA-Z]+\s+[a-zA-Z]+$`)
	yearsOfExpRe    = regexp.MustCompile(`\d+.*years`)
	headerOnlyRe    = regexp.MustCompile(`(?i)^(summary|profile|experience|education|skills|about)$`)
)

// fallbackSections re-splits text with the simple keyword-line patterns; if
// that still produces at most one section, it degrades to the line-level
// professional-content classifier.
func fallbackSections(text string, stats *types.AnonymizationStats) map[string]string {
	result := make(map[string]string)

	currentKey := sections.KeySummary
	var current []string

	flush := func() {
		if len(current) > 0 {
			result[currentKey] = strings.Join(current, "\n")
			current = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		matched := false
		for _, header := range fallbackHeaderRes {
			if header.re.MatchString(line) {
				flush()
				currentKey = header.key
				matched = true
				break
			}
		}
		if !matched && line != "" {
			current = append(current, line)
		}
	}
	flush()

	if len(result) <= 1 {
		result = professionalContentOnly(text, stats)
	}

	stats.AnonymizedItems = append(stats.AnonymizedItems, "FALLBACK: Used simple section detection")
	return result
}

// professionalContentOnly is the last resort: keep only lines the classifier
// accepts as professional and present them as a synthetic experience
// section. Privacy wins over recall, so an empty survivor set produces an
// explicit placeholder rather than the original text.
func professionalContentOnly(text string, stats *types.AnonymizationStats) map[string]string {
	result := make(map[string]string)

	var kept []string
	for _, raw := range strings.Split(strings.ReplaceAll(text, `\n`, "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if isProfessionalLine(line) {
			kept = append(kept, line)
		}
	}

	if len(kept) > 0 {
		result[sections.KeyExperience] = strings.Join(kept, "\n")
	} else {
		result[sections.KeyExperience] = "No professional content found after anonymization."
		stats.AnonymizedItems = append(stats.AnonymizedItems, "FALLBACK: No professional content detected")
	}

	stats.AnonymizedItems = append(stats.AnonymizedItems, "FALLBACK: Extracted professional content only")
	return result
}

var personalLineMarkers = []string{
	"years old", "born", "live in", "based in", "living in",
	"love hiking", "love playing", "free time", "hobbies", "guitar", "photography",
}

var professionalLineMarkers = []string{
	// Job titles and roles
	"engineer", "developer", "manager", "analyst", "director", "consultant", "senior", "lead",
	// Work activity
	"developed", "led", "managed", "implemented", "microservices", "team",
	// Education
	"university", "college", "degree", "bachelor", "master", "phd", "gpa", "computer science",
	// Technical skills
	"java", "python", "javascript", "react", "spring", "aws", "docker", "sql",
	// Company suffixes
	"corp", "inc", "ltd", "llc",
	// French equivalents
	"ingénieur", "développeur", "université", "diplôme", "sarl", "sas",
}

// isProfessionalLine classifies one line for the last-resort fallback:
// personal markers reject, professional markers accept, anything else drops.
func isProfessionalLine(line string) bool {
	if len(line) < 5 {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(line))

	if inlineEmailRe.MatchString(lower) || inlinePhoneRe.MatchString(lower) ||
		strings.Contains(lower, "linkedin") || bareNameRe.MatchString(lower) {
		return false
	}
	for _, marker := range personalLineMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}

	// Section headers are structure, not content.
	if headerOnlyRe.MatchString(lower) {
		return false
	}

	if inlineYearsRe.MatchString(lower) {
		return true
	}
	if strings.Contains(lower, "experience") && yearsOfExpRe.MatchString(lower) {
		return true
	}
	for _, marker := range professionalLineMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}
