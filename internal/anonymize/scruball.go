package anonymize

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/extract"
)

// ScrubAll replaces every occurrence of the detected name, email, phone and
// LinkedIn URL across the whole text with bracket tags. It is the blunt
// alternative to the hybrid strategy: no section analysis, full recall on
// the detected identity fields.
func ScrubAll(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	scrubbed := text
	contact := extract.PersonalInfo(text)

	if contact.Name != "" {
		scrubbed = strings.ReplaceAll(scrubbed, contact.Name, "[NAME]")
	}
	if contact.Email != "" {
		scrubbed = strings.ReplaceAll(scrubbed, contact.Email, "[EMAIL]")
	}
	if contact.Phone != "" {
		scrubbed = strings.ReplaceAll(scrubbed, contact.Phone, "[PHONE]")
	}
	if url := extract.LinkedInURL(text); url != "" {
		raw := strings.TrimPrefix(url, "https://www.")
		scrubbed = strings.ReplaceAll(scrubbed, raw, "[LINKEDIN]")
	}

	return scrubbed
}
