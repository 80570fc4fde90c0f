// Package extract parses the content of individual résumé sections into
// structured entries: work experience, education, skills and personal
// contact details. All extraction is best-effort; fragments that cannot be
// resolved are skipped, never surfaced as errors.
package extract

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/types"
)

// dateLineRes detects lines that structurally look like a date range. This
// list is deliberately looser than the range parser's dispatch table: here a
// false positive only mis-slices an entry, it never produces a bad date.
var dateLineRes = []*regexp.Regexp{
	// \p{L} instead of \w so accented French month names match.
	regexp.MustCompile(`(?i)(\p{L}{3,})\s+(\d{4})\s*[-–]\s*(\p{L}{3,})\s+(\d{4})`),    // "Jan 2020 - Dec 2022"
	regexp.MustCompile(`(\d{1,2})/(\d{4})\s*[-–]\s*(\d{1,2})/(\d{4})`),                // "01/2020 - 12/2022"
	regexp.MustCompile(`(\d{4})[-.]?(\d{2})\s*[-–]\s*(\d{4})[-.]?(\d{2})`),            // "2020-01 - 2022-12"
	regexp.MustCompile(`(?i)(\p{L}{3,})\s+(\d{4})\s*[-–]\s*(present|current)`),        // "Jan 2020 - Present"
	regexp.MustCompile(`(?i)(\p{L}{3,})\s+(\d{4})\s*[-–]\s*(aujourd'hui|actuel)`),     // "janv 2020 - Aujourd'hui"
	regexp.MustCompile(`(?i)(\d{1,2})/(\d{4})\s*[-–]\s*(aujourd'hui|actuel)`),         // "01/2020 - Aujourd'hui"
	regexp.MustCompile(`(?i)du\s+(\p{L}{3,})\s+(\d{4})\s+au\s+(\p{L}{3,})\s+(\d{4})`), // "du janv 2020 au déc 2022"
	regexp.MustCompile(`(?i)de\s+(\d{1,2})/(\d{4})\s+[àa]\s+(\d{1,2})/(\d{4})`),       // "de 01/2020 à 12/2022"
	regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current|aujourd'hui|actuel)`), // bare years
}

var jobTitleKeywords = []string{
	// English
	"engineer", "developer", "manager", "director", "analyst", "consultant",
	"lead", "senior", "junior", "principal", "staff", "architect", "specialist",
	"coordinator", "supervisor", "executive", "officer", "administrator",

	// French
	"ingénieur", "développeur", "responsable", "directeur", "analyste",
	"chef", "architecte", "spécialiste", "coordinateur", "superviseur",
	"chargé", "attaché", "gérant",
}

var companyIndicators = []string{
	"inc", "corp", "corporation", "company", "ltd", "limited", "llc", "group",
	"sarl", "sas", "sa", "eurl", "société", "entreprise", "groupe", "gmbh", "ag",
}

var actionVerbs = []string{
	// English
	"developed", "led", "managed", "implemented", "designed", "built",
	"created", "improved", "delivered", "maintained", "automated", "migrated",
	"architected", "launched", "mentored", "optimized", "reduced",

	// French
	"développé", "géré", "dirigé", "implémenté", "conçu", "créé", "amélioré",
	"livré", "maintenu", "automatisé", "migré", "encadré", "optimisé", "réduit",
}

var (
	titleCaseRe    = regexp.MustCompile(`^[A-Z][a-z]+(?:\s+[A-Z][a-z]*)*$`)
	bulletStartRe  = regexp.MustCompile(`^[•\-\*\+]\s+`)
	wordSplitRe    = regexp.MustCompile(`\s+`)
	leadingWordRe  = regexp.MustCompile(`^[\p{L}']+`)
)

// workBlock groups the lines of one position before structured parsing.
type workBlock struct {
	headerLines      []string
	dateLine         string
	descriptionLines []string
}

// WorkExperience parses an experience section into structured entries,
// ordered most-recent-first by start date; entries without a parsable date
// sort last, stable. Entries lacking a resolvable job title are dropped.
func WorkExperience(sectionText string, now time.Time) []types.WorkExperience {
	if strings.TrimSpace(sectionText) == "" {
		return nil
	}

	lines := strings.Split(sectionText, "\n")

	var blocks []workBlock
	dateLines := findDateLines(lines)
	if len(dateLines) > 0 {
		blocks = splitByDateLines(lines, dateLines)
	} else {
		blocks = splitByJobTitles(lines)
	}

	var experiences []types.WorkExperience
	for _, block := range blocks {
		if exp, ok := parseWorkBlock(block, now); ok {
			experiences = append(experiences, exp)
		}
	}

	sort.SliceStable(experiences, func(i, j int) bool {
		a, b := experiences[i].StartDate, experiences[j].StartDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return experiences
}

func findDateLines(lines []string) []int {
	var indexes []int
	for i, line := range lines {
		if isDateLine(strings.TrimSpace(line)) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func isDateLine(line string) bool {
	for _, re := range dateLineRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// splitByDateLines builds one block per date line: the 1-3 lines above carry
// title and company, the run below until the next date line is description.
func splitByDateLines(lines []string, dateLines []int) []workBlock {
	blocks := make([]workBlock, 0, len(dateLines))

	for i, dateIdx := range dateLines {
		headerStart := 0
		if i > 0 {
			headerStart = dateLines[i-1] + 1
		}
		descriptionEnd := len(lines)
		if i+1 < len(dateLines) {
			descriptionEnd = dateLines[i+1]
		}

		blocks = append(blocks, workBlock{
			headerLines:      nonEmpty(lines[headerStart:dateIdx]),
			dateLine:         strings.TrimSpace(lines[dateIdx]),
			descriptionLines: nonEmpty(lines[dateIdx+1 : descriptionEnd]),
		})
	}

	return blocks
}

// splitByJobTitles is the fallback when no date line exists: each line that
// looks like a job title opens a new block, following lines are classified
// as date or description by content.
func splitByJobTitles(lines []string) []workBlock {
	var blocks []workBlock
	var current *workBlock

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if looksLikeJobTitle(line) {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &workBlock{headerLines: []string{line}}
			continue
		}
		if current == nil {
			continue
		}
		if isDateLine(line) {
			current.dateLine = line
		} else {
			current.descriptionLines = append(current.descriptionLines, line)
		}
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}

func looksLikeJobTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range jobTitleKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return titleCaseRe.MatchString(line) && len(line) < 60
}

// parseWorkBlock resolves a block into a structured entry; ok is false when
// no job title can be resolved.
func parseWorkBlock(block workBlock, now time.Time) (types.WorkExperience, bool) {
	title := resolveJobTitle(block.headerLines)
	if title == "" {
		return types.WorkExperience{}, false
	}

	exp := types.WorkExperience{
		JobTitle:    title,
		Company:     resolveCompany(block, title),
		Description: strings.Join(filterDescription(block.descriptionLines), "\n"),
	}

	if block.dateLine != "" {
		if r := dates.ParseRange(block.dateLine, now); r.Valid {
			exp.StartDate = r.StartDate
			exp.EndDate = r.EndDate
		}
	}

	return exp, true
}

// resolveJobTitle prefers the header line with a job-title keyword or
// Title-Case shape, falling back to the first reasonably short line.
func resolveJobTitle(headerLines []string) string {
	for _, line := range headerLines {
		if looksLikeJobTitle(line) {
			return cleanTitle(line)
		}
	}
	for _, line := range headerLines {
		if line != "" && len(line) < 80 {
			return cleanTitle(line)
		}
	}
	return ""
}

func cleanTitle(line string) string {
	cleaned := bulletStartRe.ReplaceAllString(strings.TrimSpace(line), "")
	return wordSplitRe.ReplaceAllString(cleaned, " ")
}

// resolveCompany scans header then description lines for a company-suffix
// token and keeps a two-word window around it. When the block has a distinct
// second header line that is not the title, that line is the company.
func resolveCompany(block workBlock, title string) string {
	for _, line := range block.headerLines {
		if company := companyFromLine(line); company != "" {
			return company
		}
	}
	for _, line := range block.descriptionLines {
		if company := companyFromLine(line); company != "" {
			return company
		}
	}

	for _, line := range block.headerLines {
		if cleanTitle(line) != title {
			return cleanTitle(line)
		}
	}

	return "Unknown"
}

func companyFromLine(line string) string {
	lower := strings.ToLower(line)

	for _, indicator := range companyIndicators {
		if !strings.Contains(lower, indicator) {
			continue
		}
		words := strings.Fields(line)
		for i, word := range words {
			// Whole-token match only; "Manager" must not hit the "ag" indicator.
			if strings.Trim(strings.ToLower(word), ".,;()") != indicator {
				continue
			}
			start := max(0, i-2)
			end := min(len(words), i+2)
			company := strings.Join(words[start:end], " ")
			if len(company) > 0 && len(company) < 100 {
				return company
			}
		}
	}

	return ""
}

// filterDescription keeps only lines that look like bullets or begin with an
// action verb; everything else in the run is assumed to be layout noise.
func filterDescription(lines []string) []string {
	var kept []string
	for _, line := range lines {
		if bulletStartRe.MatchString(line) || startsWithActionVerb(line) {
			kept = append(kept, line)
		}
	}
	return kept
}

func startsWithActionVerb(line string) bool {
	first := strings.ToLower(leadingWordRe.FindString(strings.TrimSpace(line)))
	if first == "" {
		return false
	}
	for _, verb := range actionVerbs {
		if first == verb {
			return true
		}
	}
	return false
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
