package anonymize

import (
	"sort"
	"strings"
)

// preferredOrder is the section order of the reconstructed résumé.
var preferredOrder = []string{
	"professional_summary", "experience", "education", "skills",
	"certifications", "projects", "achievements", "awards", "publications",
}

// reconstruct emits kept sections in the preferred order, each under its
// upper-cased header; leftover sections follow in sorted key order. Empty
// sections are omitted entirely.
func reconstruct(cleaned map[string]string) string {
	var b strings.Builder

	emitted := make(map[string]bool, len(cleaned))
	for _, key := range preferredOrder {
		emitSection(&b, key, cleaned[key])
		emitted[key] = true
	}

	rest := make([]string, 0, len(cleaned))
	for key := range cleaned {
		if !emitted[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		emitSection(&b, key, cleaned[key])
	}

	return strings.TrimSpace(b.String())
}

func emitSection(b *strings.Builder, key, content string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	b.WriteString(sectionHeader(key))
	b.WriteString("\n")
	b.WriteString(content)
	b.WriteString("\n\n")
}

// sectionHeader renders a section key as a display header: upper-cased,
// underscores to spaces.
func sectionHeader(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}
