package sections

import "strings"

// Map holds section bodies keyed by canonical section key. When two headers
// resolve to the same key, the later section wins.
type Map map[string]string

// Split segments résumé text into canonical sections. It never fails: text
// with no detectable headers maps entirely to summary.
func Split(text string) Map {
	preprocessed := Preprocess(text)
	lines := strings.Split(preprocessed, "\n")

	candidates := detectHeaders(lines)
	headers := validateHeaders(candidates, lines)

	return extractSections(headers, lines)
}

// extractSections slices the line array at the accepted headers: everything
// before the first header is summary, everything between two headers belongs
// to the earlier one.
func extractSections(headers []headerCandidate, lines []string) Map {
	result := make(Map)

	if len(headers) == 0 {
		result[KeySummary] = strings.TrimSpace(strings.Join(lines, "\n"))
		return result
	}

	if headers[0].startLine > 0 {
		summary := strings.Join(lines[:headers[0].startLine], "\n")
		result[KeySummary] = strings.TrimSpace(summary)
	}

	for i, header := range headers {
		start := header.endLine + 1
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].startLine
		}

		body := strings.TrimSpace(strings.Join(lines[start:end], "\n"))
		result[CanonicalKey(header.matchedKeyword)] = body
	}

	return result
}
