package sections

import (
	"regexp"
	"strings"
)

// headerStyle tags how a header candidate appears on the page.
type headerStyle int

const (
	styleSingleLine headerStyle = iota // "EXPERIENCE"
	styleMultiLine                     // "EXPÉRIENCE\nPROFESSIONNELLE"
	styleBulleted                      // "• Work History"
	styleIndented                      // "    FORMATION"
)

// headerCandidate is a line or line-group hypothesized to be a section
// title. Candidates exist only during segmentation.
type headerCandidate struct {
	text           string
	startLine      int
	endLine        int
	style          headerStyle
	confidence     float64
	matchedKeyword string
	exact          bool // line equals the keyword outright
}

var (
	bulletPrefixRe = regexp.MustCompile(`^[•\-\*\+]\s+`)
	indentedRe     = regexp.MustCompile(`^\s{3,}\S`)
)

// detectHeaders scans every line (and 2-3 line windows for wrapped headers)
// for section-title candidates.
func detectHeaders(lines []string) []headerCandidate {
	var candidates []headerCandidate

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if c := checkSingleLineHeader(line, i); c != nil {
			candidates = append(candidates, *c)
			continue
		}
		if c := checkBulletedHeader(line, i); c != nil {
			candidates = append(candidates, *c)
			continue
		}
		if c := checkIndentedHeader(raw, i); c != nil {
			candidates = append(candidates, *c)
			continue
		}
		if c := checkMultiLineHeader(lines, i); c != nil {
			candidates = append(candidates, *c)
		}
	}

	return candidates
}

// checkSingleLineHeader matches a line that equals a known keyword, or is a
// short all-caps line containing one.
func checkSingleLineHeader(line string, lineIndex int) *headerCandidate {
	lower := strings.ToLower(line)

	for _, row := range sectionKeywords {
		exact := lower == row.keyword
		allCapsMatch := line == strings.ToUpper(line) && strings.Contains(lower, row.keyword) && len(line) < 50
		if !exact && !allCapsMatch {
			continue
		}

		confidence := singleLineConfidence(line, row.keyword)
		if confidence > 0.6 {
			return &headerCandidate{
				text:           line,
				startLine:      lineIndex,
				endLine:        lineIndex,
				style:          styleSingleLine,
				confidence:     confidence,
				matchedKeyword: row.keyword,
				exact:          exact,
			}
		}
	}
	return nil
}

// checkBulletedHeader matches "• Experience" style lines.
func checkBulletedHeader(line string, lineIndex int) *headerCandidate {
	if !bulletPrefixRe.MatchString(line) {
		return nil
	}
	content := strings.ToLower(bulletPrefixRe.ReplaceAllString(line, ""))

	for _, row := range sectionKeywords {
		if strings.Contains(content, row.keyword) && len(content) < 50 {
			confidence := listItemConfidence(content, row.keyword)
			if confidence > 0.6 {
				return &headerCandidate{
					text:           line,
					startLine:      lineIndex,
					endLine:        lineIndex,
					style:          styleBulleted,
					confidence:     confidence,
					matchedKeyword: row.keyword,
					exact:          content == row.keyword,
				}
			}
		}
	}
	return nil
}

// checkIndentedHeader matches keyword lines pushed right by at least three
// spaces; raw is the unstripped line so the indentation is visible.
func checkIndentedHeader(raw string, lineIndex int) *headerCandidate {
	if !indentedRe.MatchString(raw) {
		return nil
	}
	content := strings.ToLower(strings.TrimSpace(raw))

	for _, row := range sectionKeywords {
		if strings.Contains(content, row.keyword) && len(content) < 50 {
			confidence := listItemConfidence(content, row.keyword)
			if confidence > 0.6 {
				return &headerCandidate{
					text:           strings.TrimSpace(raw),
					startLine:      lineIndex,
					endLine:        lineIndex,
					style:          styleIndented,
					confidence:     confidence,
					matchedKeyword: row.keyword,
					exact:          content == row.keyword,
				}
			}
		}
	}
	return nil
}

// checkMultiLineHeader tests 2-line and 3-line windows for headers wrapped
// across lines ("EXPÉRIENCE\nPROFESSIONNELLE").
func checkMultiLineHeader(lines []string, start int) *headerCandidate {
	if start >= len(lines)-1 {
		return nil
	}

	first := strings.TrimSpace(lines[start])
	second := strings.TrimSpace(lines[start+1])
	if second == "" {
		return nil
	}

	if c := checkMultiLineCombo(first, second, start, start+1); c != nil {
		return c
	}

	if start+2 < len(lines) {
		third := strings.TrimSpace(lines[start+2])
		if third != "" && len(third) < 30 {
			if c := checkMultiLineCombo(first, second+" "+third, start, start+2); c != nil {
				return c
			}
		}
	}

	return nil
}

func checkMultiLineCombo(first, rest string, start, end int) *headerCandidate {
	combo := strings.ToLower(first + " " + rest)

	for _, row := range sectionKeywords {
		if !strings.Contains(combo, row.keyword) {
			continue
		}
		confidence := multiLineConfidence(combo, first, rest)
		if confidence > 0.7 {
			return &headerCandidate{
				text:           first + "\n" + rest,
				startLine:      start,
				endLine:        end,
				style:          styleMultiLine,
				confidence:     confidence,
				matchedKeyword: row.keyword,
			}
		}
	}
	return nil
}

// singleLineConfidence scores a one-line candidate: base 0.5, exact keyword
// match +0.4, all-caps +0.2, short +0.1, company-suffix token -0.3.
func singleLineConfidence(line, keyword string) float64 {
	confidence := 0.5
	lower := strings.ToLower(line)

	if lower == keyword {
		confidence += 0.4
	}
	if line == strings.ToUpper(line) {
		confidence += 0.2
	}
	if len(line) < 30 {
		confidence += 0.1
	}
	if containsCompanySuffix(lower) {
		confidence -= 0.3
	}

	return min(confidence, 1.0)
}

func multiLineConfidence(combo, first, rest string) float64 {
	confidence := 0.6
	if len(first) < 20 && len(rest) < 30 {
		confidence += 0.2
	}
	if strings.Contains(combo, "expérience professionnelle") ||
		strings.Contains(combo, "work experience") ||
		strings.Contains(combo, "professional experience") {
		confidence += 0.2
	}
	return min(confidence, 1.0)
}

// listItemConfidence scores bulleted and indented candidates.
func listItemConfidence(content, keyword string) float64 {
	confidence := 0.6
	if content == keyword {
		confidence += 0.3
	}
	if len(content) < 25 {
		confidence += 0.1
	}
	return min(confidence, 1.0)
}
