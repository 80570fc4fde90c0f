package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}`)
	phoneRe    = regexp.MustCompile(`\+?[0-9][0-9 ()-]{7,20}`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[a-zA-Z0-9-]+`)

	// Employment periods ("2019 - 2022") satisfy the phone shape; they are
	// never phone numbers.
	yearSpanRe = regexp.MustCompile(`^\d{4}\s*[-–]\s*\d{4}$`)
)

// Contact holds the identity fields detected in raw résumé text. Empty
// string means not found.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// PersonalInfo extracts name, email and phone from raw text. The name is the
// first non-blank line; email and phone are first-match regex hits, with
// phone candidates rejected when they fail the plausibility check.
func PersonalInfo(text string) Contact {
	return Contact{
		Name:  firstNonBlankLine(text),
		Email: emailRe.FindString(text),
		Phone: findPhone(text),
	}
}

func firstNonBlankLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func findPhone(text string) string {
	for _, match := range phoneRe.FindAllString(text, -1) {
		candidate := strings.TrimSpace(match)
		if yearSpanRe.MatchString(candidate) {
			continue
		}
		if types.ValidPhone(candidate) {
			return candidate
		}
	}
	return ""
}

// LinkedInURL extracts the candidate's LinkedIn profile URL, normalized to
// the https://www. form. Empty string when absent.
func LinkedInURL(text string) string {
	if match := linkedinRe.FindString(text); match != "" {
		return "https://www." + match
	}
	return ""
}
