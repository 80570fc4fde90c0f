package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/types"
)

const monthToken = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec|janv|févr|mars|avr|mai|juin|juil|août|sept|déc)`

var (
	// gradDateRe matches the graduation-date line of an education block:
	// an optional label, then "May 2015", "05/2015" or a bare year.
	gradDateRe = regexp.MustCompile(`(?i)^(?:graduated:\s*|obtenu en\s*)?(` + monthToken + `[a-zé.]*\s+\d{4}|\d{1,2}/\d{4}|\d{4})$`)

	mmYYYYRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{4})\b`)
	bareYearRe  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthWordRe = regexp.MustCompile(`(?i)\b` + monthToken + `[a-zé]*\b`)
)

// Education parses an education section. The expected block shape is a
// degree line, an institution line, then a graduation-date token, optionally
// followed by free-text details consumed until the next degree-like block.
func Education(sectionText string) []types.Education {
	lines := nonEmpty(strings.Split(sectionText, "\n"))

	var entries []types.Education
	for i := 0; i+2 < len(lines); {
		if !isEducationBlockStart(lines, i) {
			i++
			continue
		}

		entry := types.Education{
			Degree:         lines[i],
			Institution:    lines[i+1],
			GraduationDate: parseGraduationDate(gradDateRe.FindStringSubmatch(lines[i+2])[1]),
		}

		// Consume trailing details until the next block starts.
		j := i + 3
		var details []string
		for j < len(lines) && !isEducationBlockStart(lines, j) {
			details = append(details, lines[j])
			j++
		}
		entry.Details = strings.Join(details, "\n")

		entries = append(entries, entry)
		i = j
	}

	return entries
}

// isEducationBlockStart reports whether lines[i..i+2] have the
// degree/institution/date shape.
func isEducationBlockStart(lines []string, i int) bool {
	return i+2 < len(lines) && gradDateRe.MatchString(lines[i+2]) &&
		!gradDateRe.MatchString(lines[i]) && !gradDateRe.MatchString(lines[i+1])
}

// parseGraduationDate resolves a date token leniently: MM/YYYY first, then a
// bare year, then month-name + year. Returns nil when nothing parses or the
// token marks an ongoing program.
func parseGraduationDate(token string) *time.Time {
	cleaned := strings.TrimSpace(token)
	if cleaned == "" {
		return nil
	}
	lower := strings.ToLower(cleaned)
	if lower == "present" || lower == "current" || lower == "aujourd'hui" || lower == "actuel" {
		return nil
	}
	cleaned = strings.ReplaceAll(cleaned, ".", "")

	if m := mmYYYYRe.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	year := 0
	if m := bareYearRe.FindString(cleaned); m != "" {
		year, _ = strconv.Atoi(m)
	}
	if year == 0 {
		return nil
	}

	month := 1
	if m := monthWordRe.FindString(cleaned); m != "" {
		if resolved, err := dates.MonthNumber(m); err == nil {
			month = resolved
		}
	}

	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &d
}
