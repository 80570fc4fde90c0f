package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	punctRe      = regexp.MustCompile(`[,.]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	toWordRe     = regexp.MustCompile(`\bto\b`)
	tillWordRe   = regexp.MustCompile(`\btill?\b`)
	numericRe    = regexp.MustCompile(`^\d+$`)
)

// ParseRange parses a free-text date-range expression into a validated
// interval. now pins the clock for future-date checks so results are
// reproducible. Failure never panics: an unparseable expression yields an
// invalid DateRange with a diagnostic message.
func ParseRange(text string, now time.Time) types.DateRange {
	if strings.TrimSpace(text) == "" {
		return types.DateRange{Message: "Empty date text"}
	}

	cleaned := preprocess(text)

	for _, pattern := range rangePatterns {
		match := pattern.re.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}
		result, err := parseWithPattern(match, pattern, cleaned, now)
		if err != nil {
			// Structural match but unparseable components; try the next grammar.
			continue
		}
		return validateRange(result, now)
	}

	return types.DateRange{Message: "No matching date pattern found"}
}

// preprocess normalizes separators and whitespace so every grammar sees the
// same surface form.
func preprocess(text string) string {
	cleaned := strings.ToLower(text)
	cleaned = punctRe.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.ReplaceAll(cleaned, "–", "-")
	cleaned = strings.ReplaceAll(cleaned, "—", "-")
	cleaned = toWordRe.ReplaceAllString(cleaned, " - ")
	cleaned = tillWordRe.ReplaceAllString(cleaned, " - ")
	return strings.TrimSpace(cleaned)
}

func parseWithPattern(match []string, pattern rangePattern, text string, now time.Time) (types.DateRange, error) {
	startMonth := captureGroup(match, pattern.groups[0])
	startYear := captureGroup(match, pattern.groups[1])
	endMonth := captureGroup(match, pattern.groups[2])
	endYear := captureGroup(match, pattern.groups[3])

	start, err := parseDate(startMonth, startYear, pattern.quarter, now)
	if err != nil {
		return types.DateRange{}, err
	}

	var end *time.Time
	if !IsOngoing(text) {
		end, err = parseDate(endMonth, endYear, pattern.quarter, now)
		if err != nil {
			return types.DateRange{}, err
		}
	}

	return types.DateRange{
		StartDate: start,
		EndDate:   end,
		Valid:     true,
		Message:   "Parsed with pattern: " + pattern.name,
	}, nil
}

func captureGroup(match []string, index int) string {
	if index < 0 || index >= len(match) {
		return ""
	}
	return match[index]
}

// IsOngoing reports whether the text marks a currently-held position.
func IsOngoing(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range []string{"present", "current", "now", "aujourd'hui", "actuel", "maintenant"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseDate builds the first day of the (month, year) pair. A missing end
// component yields a nil date (open interval); a missing year is an error.
func parseDate(monthStr, yearStr string, quarter bool, now time.Time) (*time.Time, error) {
	if yearStr == "" {
		if monthStr == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("year is required")
	}

	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return nil, fmt.Errorf("invalid year %q: %w", yearStr, err)
	}
	// Two-digit years: 23 → 2023, 87 → 1987.
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if year < 1950 || year > now.Year()+1 {
		return nil, fmt.Errorf("year %d out of reasonable range", year)
	}

	month := 1 // Default to January when the grammar has no month component.
	if trimmed := strings.TrimSpace(monthStr); trimmed != "" {
		switch {
		case quarter:
			q, err := strconv.Atoi(trimmed)
			if err != nil || q < 1 || q > 4 {
				return nil, fmt.Errorf("invalid quarter %q", monthStr)
			}
			// Q1→Jan, Q2→Apr, Q3→Jul, Q4→Oct.
			month = (q-1)*3 + 1
		case numericRe.MatchString(trimmed):
			month, err = strconv.Atoi(trimmed)
			if err != nil || month < 1 || month > 12 {
				return nil, fmt.Errorf("invalid month number %q", monthStr)
			}
		default:
			month, err = MonthNumber(trimmed)
			if err != nil {
				return nil, err
			}
		}
	}

	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return &date, nil
}

// validateRange applies chronological checks. Future dates and reversed
// intervals invalidate the result; implausible durations only append
// warnings.
func validateRange(result types.DateRange, now time.Time) types.DateRange {
	if result.StartDate == nil {
		return types.DateRange{Message: "Start date is required"}
	}

	var warnings []string
	valid := true

	if result.StartDate.After(now) {
		warnings = append(warnings, "Start date is in the future")
		valid = false
	}

	if result.EndDate != nil {
		if result.EndDate.Before(*result.StartDate) {
			warnings = append(warnings, "End date is before start date")
			valid = false
		}
		if result.EndDate.After(now) {
			warnings = append(warnings, "End date is in the future")
			valid = false
		}

		months := monthsBetween(*result.StartDate, *result.EndDate)
		if months > 600 { // 50 years
			warnings = append(warnings, fmt.Sprintf("Position duration seems unreasonably long (%d months)", months))
		}
		if days := int(result.EndDate.Sub(*result.StartDate).Hours() / 24); days < 7 {
			warnings = append(warnings, fmt.Sprintf("Position duration seems very short (%d days)", days))
		}
	}

	message := result.Message
	if len(warnings) > 0 {
		message += "; Validation warnings: " + strings.Join(warnings, ", ")
	}

	return types.DateRange{
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Valid:     valid,
		Message:   message,
	}
}

// monthsBetween counts complete months from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}
