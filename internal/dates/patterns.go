// Package dates parses free-text date-range expressions from résumés and
// analyzes career timelines built from them. English and French grammars are
// supported; all patterns are tried in priority order and the first
// structural match wins.
package dates

import "regexp"

// rangePattern describes one date-range grammar. groups maps capture-group
// indexes to (startMonth, startYear, endMonth, endYear); -1 means the
// component is absent and defaults (month → January, end → open).
type rangePattern struct {
	re      *regexp.Regexp
	name    string
	groups  [4]int
	quarter bool // month captures are quarter numbers
}

const frenchMonths = `janvier|février|mars|avril|mai|juin|juillet|août|septembre|octobre|novembre|décembre|janv|févr|avr|juil|sept|oct|nov|déc`

// rangePatterns is evaluated in order; more specific grammars come first so
// the bare year-to-year form cannot shadow them.
var rangePatterns = []rangePattern{
	// English
	{
		re:     regexp.MustCompile(`(?i)(\w{3,9})\s+(\d{4})\s*-\s*(\w{3,9})\s+(\d{4})`),
		name:   "MONTH_YEAR_TO_MONTH_YEAR", // "january 2020 - december 2022"
		groups: [4]int{1, 2, 3, 4},
	},
	{
		re:     regexp.MustCompile(`(?i)(\d{1,2})/(\d{4})\s*-\s*(\d{1,2})/(\d{4})`),
		name:   "MM_YYYY_TO_MM_YYYY", // "01/2020 - 12/2022"
		groups: [4]int{1, 2, 3, 4},
	},
	{
		re:     regexp.MustCompile(`(?i)(\d{4})[-.]?(\d{2})\s*-\s*(\d{4})[-.]?(\d{2})`),
		name:   "YYYY_MM_TO_YYYY_MM", // "2020-01 - 2022-12"
		groups: [4]int{2, 1, 4, 3},
	},
	{
		re:     regexp.MustCompile(`(?i)(\w{3,9})\s+(\d{4})\s*-\s*(present|current|now)`),
		name:   "MONTH_YEAR_TO_PRESENT", // "january 2020 - present"
		groups: [4]int{1, 2, -1, -1},
	},

	// French
	{
		re:     regexp.MustCompile(`(?i)(` + frenchMonths + `)\s+(\d{4})\s*-\s*(` + frenchMonths + `)\s+(\d{4})`),
		name:   "FRENCH_MONTH_YEAR_TO_MONTH_YEAR", // "janvier 2020 - décembre 2022"
		groups: [4]int{1, 2, 3, 4},
	},
	{
		// \w is ASCII-only in RE2, so accented months need the explicit alternation.
		re:     regexp.MustCompile(`(?i)(` + frenchMonths + `)\s+(\d{4})\s*-\s*(aujourd'hui|actuel|maintenant)`),
		name:   "FRENCH_MONTH_YEAR_TO_PRESENT", // "janvier 2020 - aujourd'hui"
		groups: [4]int{1, 2, -1, -1},
	},
	{
		re:     regexp.MustCompile(`(?i)du\s+(` + frenchMonths + `)\s+(\d{4})\s+au\s+(` + frenchMonths + `)\s+(\d{4})`),
		name:   "FRENCH_DU_AU", // "du janvier 2020 au décembre 2022"
		groups: [4]int{1, 2, 3, 4},
	},
	{
		re:     regexp.MustCompile(`(?i)de\s+(\d{1,2})/(\d{4})\s+[àa]\s+(\d{1,2})/(\d{4})`),
		name:   "FRENCH_DE_A", // "de 01/2020 à 12/2022"
		groups: [4]int{1, 2, 3, 4},
	},

	// Flexible year-only forms
	{
		re:     regexp.MustCompile(`(?i)(\d{4})\s*-\s*(\d{4})`),
		name:   "YEAR_TO_YEAR", // "2020 - 2022"
		groups: [4]int{-1, 1, -1, 2},
	},
	{
		re:     regexp.MustCompile(`(?i)(\d{4})\s*-\s*(present|current|aujourd'hui|actuel)`),
		name:   "YEAR_TO_PRESENT", // "2020 - present"
		groups: [4]int{-1, 1, -1, -1},
	},

	// Quarters
	{
		re:      regexp.MustCompile(`(?i)q(\d)\s+(\d{4})\s*-\s*q(\d)\s+(\d{4})`),
		name:    "QUARTER_TO_QUARTER", // "q1 2020 - q4 2022"
		groups:  [4]int{1, 2, 3, 4},
		quarter: true,
	},
}
