package sections

import (
	"regexp"
	"sort"
	"strings"
)

var companySuffixes = []string{"inc.", "corp.", "ltd.", "llc", "sarl", "sas", "gmbh", " ag"}

var jobTitleWords = []string{
	"engineer", "developer", "manager", "director",
	"ingénieur", "développeur", "responsable", "directeur",
}

var (
	yearRangeRe   = regexp.MustCompile(`\d{4}\s*[-–]\s*\d{4}`)
	yearOngoingRe = regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(present|current|aujourd'hui|actuel)`)
	anyYearRe     = regexp.MustCompile(`\d{4}`)
)

func containsCompanySuffix(lower string) bool {
	for _, suffix := range companySuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}

// validateHeaders filters candidates against their surrounding context and
// rescales confidence; survivors are overlap-resolved and ordered by line.
func validateHeaders(candidates []headerCandidate, lines []string) []headerCandidate {
	validated := make([]headerCandidate, 0, len(candidates))

	for _, candidate := range candidates {
		multiplier, ok := validateHeaderContext(candidate, lines)
		if !ok {
			continue
		}
		candidate.confidence = min(candidate.confidence*multiplier, 1.0)
		validated = append(validated, candidate)
	}

	validated = removeOverlapping(validated)
	sortByLine(validated)
	return validated
}

// validateHeaderContext returns a confidence multiplier for the candidate,
// or ok=false when context rules it out entirely.
func validateHeaderContext(candidate headerCandidate, lines []string) (float64, bool) {
	// A header sitting in the last two lines has no section body to own.
	if candidate.endLine >= len(lines)-2 {
		return 0, false
	}

	if isCompanyNameFalsePositive(candidate, lines) {
		return 0, false
	}

	contentScore := validateSectionContent(candidate, lines)
	if contentScore < 0.3 {
		return 0, false
	}
	multiplier := 0.7 + 0.3*contentScore

	multiplier *= 0.8 + 0.2*contextLineScore(candidate, lines)

	if candidate.style == styleMultiLine && len(candidate.text) > 60 {
		multiplier *= 0.6
	}

	if candidate.confidence*multiplier < 0.4 {
		return 0, false
	}
	return multiplier, true
}

// isCompanyNameFalsePositive rejects keyword-bearing lines that are really
// company names ("Experience Systems Ltd"): the text carries a company
// suffix, or the line sits inside a job entry (adjacent lines hold a year
// range or job-title words). Exact standalone keywords skip the adjacency
// check; a bare "EXPERIENCE" line cannot be a company name even when its own
// section content follows directly beneath it.
func isCompanyNameFalsePositive(candidate headerCandidate, lines []string) bool {
	lower := strings.ToLower(candidate.text)
	if containsCompanySuffix(lower) {
		return true
	}
	if candidate.exact {
		return false
	}

	start := max(0, candidate.startLine-2)
	end := min(len(lines), candidate.endLine+3)

	for i := start; i < end; i++ {
		if i >= candidate.startLine && i <= candidate.endLine {
			continue
		}
		line := strings.ToLower(lines[i])

		if yearRangeRe.MatchString(line) || yearOngoingRe.MatchString(line) {
			return true
		}
		for _, word := range jobTitleWords {
			if strings.Contains(line, word) {
				return true
			}
		}
	}

	return false
}

// validateSectionContent scores the first ten lines after the header against
// the expected content of the matched section type.
func validateSectionContent(candidate headerCandidate, lines []string) float64 {
	start := candidate.endLine + 1
	if start >= len(lines) {
		return 0.0
	}
	end := min(len(lines), start+10)

	sectionType := CanonicalKey(candidate.matchedKeyword)
	score := 0.0
	scored := 0

	for i := start; i < end; i++ {
		line := strings.ToLower(strings.TrimSpace(lines[i]))
		if line == "" {
			continue
		}
		scored++

		switch sectionType {
		case KeyExperience:
			score += experienceContentScore(line)
		case KeyEducation:
			score += educationContentScore(line)
		case KeySkills:
			score += skillsContentScore(line)
		default:
			score += 0.5 // neutral for summary-like sections
		}
	}

	if scored == 0 {
		return 0.0
	}
	return score / float64(scored)
}

func experienceContentScore(line string) float64 {
	score := 0.3

	if containsAny(line, "engineer", "developer", "manager", "analyst", "consultant", "director",
		"ingénieur", "développeur", "responsable", "chef", "directeur") {
		score += 0.3
	}
	if anyYearRe.MatchString(line) || containsAny(line, "inc", "corp", "ltd", "sarl", "sas") {
		score += 0.2
	}
	if containsAny(line, "developed", "managed", "led", "implemented", "designed",
		"développé", "géré", "dirigé", "implémenté", "conçu") {
		score += 0.3
	}

	return min(score, 1.0)
}

func educationContentScore(line string) float64 {
	score := 0.3

	if containsAny(line, "bachelor", "master", "phd", "diploma", "degree",
		"licence", "doctorat", "diplôme", "bts", "dut") {
		score += 0.4
	}
	if containsAny(line, "university", "college", "school", "institute",
		"université", "école", "institut", "lycée") {
		score += 0.3
	}
	if anyYearRe.MatchString(line) || containsAny(line, "graduated", "diplômé") {
		score += 0.2
	}

	return min(score, 1.0)
}

func skillsContentScore(line string) float64 {
	score := 0.3

	if containsAny(line, "java", "python", "javascript", "sql", "aws", "docker",
		"react", "angular", "spring") {
		score += 0.4
	}
	if containsAny(line, "programming", "languages", "frameworks", "databases", "tools",
		"programmation", "langages", "outils") {
		score += 0.3
	}
	if strings.Count(line, ",") >= 2 {
		score += 0.3
	}

	return min(score, 1.0)
}

func containsAny(line string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(line, word) {
			return true
		}
	}
	return false
}

// contextLineScore rewards headers with real content on both sides.
func contextLineScore(candidate headerCandidate, lines []string) float64 {
	score := 0.5

	for i := max(0, candidate.startLine-3); i < candidate.startLine; i++ {
		if line := strings.TrimSpace(lines[i]); len(line) > 10 {
			score += 0.2
			break
		}
	}

	for i := candidate.endLine + 1; i < min(len(lines), candidate.endLine+5); i++ {
		if line := strings.TrimSpace(lines[i]); len(line) > 5 {
			score += 0.3
			break
		}
	}

	return min(score, 1.0)
}

// removeOverlapping drops candidates whose line ranges intersect an already
// accepted candidate, keeping the higher confidence of the pair.
func removeOverlapping(candidates []headerCandidate) []headerCandidate {
	var result []headerCandidate

	for _, candidate := range candidates {
		overlapped := false
		for i, existing := range result {
			if candidate.startLine <= existing.endLine && candidate.endLine >= existing.startLine {
				overlapped = true
				if candidate.confidence > existing.confidence {
					result[i] = candidate
				}
				break
			}
		}
		if !overlapped {
			result = append(result, candidate)
		}
	}

	return result
}

func sortByLine(candidates []headerCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].startLine < candidates[j].startLine
	})
}
