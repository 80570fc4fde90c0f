package sections

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	loneLRe        = regexp.MustCompile(`\bl\b`)
	loneRnRe       = regexp.MustCompile(`\brn\b`)
	loneORe        = regexp.MustCompile(`\bO\b`)
	spaceColonRe   = regexp.MustCompile(`\s+:`)
	spaceSemiRe    = regexp.MustCompile(`\s+;`)
	trailingWsRe   = regexp.MustCompile(`[ \t]+$`)
	leadingWsRe    = regexp.MustCompile(`^[ \t]*`)
	collapseWsRe   = regexp.MustCompile(`\s+`)
	ocrAccentPairs = strings.NewReplacer("e'", "é", "a'", "à", "E'", "É", "A'", "À")
)

// Preprocess normalizes résumé text before header detection: NFC
// normalization, common OCR repairs, line-ending normalization, and
// whitespace cleanup that keeps indentation and blank-line structure.
func Preprocess(text string) string {
	if text == "" {
		return text
	}

	normalized := norm.NFC.String(text)
	normalized = fixCommonOCRErrors(normalized)
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return cleanWhitespace(normalized)
}

// fixCommonOCRErrors repairs character misreads that defeat keyword matching.
func fixCommonOCRErrors(text string) string {
	fixed := loneLRe.ReplaceAllString(text, "I")
	fixed = loneRnRe.ReplaceAllString(fixed, "m")
	fixed = loneORe.ReplaceAllString(fixed, "0")
	fixed = ocrAccentPairs.Replace(fixed)
	fixed = spaceColonRe.ReplaceAllString(fixed, ":")
	fixed = spaceSemiRe.ReplaceAllString(fixed, ";")
	return fixed
}

// cleanWhitespace collapses interior whitespace runs per line while keeping
// leading indentation (indented headers depend on it) and reducing blank-line
// runs to a single blank line.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blankPending := false

	for _, line := range lines {
		line = trailingWsRe.ReplaceAllString(line, "")
		if strings.TrimSpace(line) == "" {
			if len(cleaned) > 0 {
				blankPending = true
			}
			continue
		}

		indent := leadingWsRe.FindString(line)
		body := collapseWsRe.ReplaceAllString(strings.TrimSpace(line), " ")
		if blankPending {
			cleaned = append(cleaned, "")
			blankPending = false
		}
		cleaned = append(cleaned, indent+body)
	}

	return strings.Join(cleaned, "\n")
}
