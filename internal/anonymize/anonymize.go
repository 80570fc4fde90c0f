// Package anonymize produces privacy-scrubbed résumé text. The hybrid
// strategy removes personal sections entirely, keeps professional sections,
// and scrubs any contact details that leaked into them; when in doubt it
// over-redacts rather than leaking personal data.
package anonymize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ErrNilConfig reports a programming error: anonymization must always be
// called with an explicit configuration.
var ErrNilConfig = errors.New("anonymize: nil config")

// professionalSections are kept unconditionally.
var professionalSections = map[string]bool{
	"experience": true, "education": true, "skills": true, "certifications": true,
	"projects": true, "achievements": true, "publications": true, "awards": true,
}

// personalSections are dropped unconditionally.
var personalSections = map[string]bool{
	"summary": true, "profile": true, "objective": true, "about": true, "contact": true,
	"personal": true, "interests": true, "hobbies": true, "references": true,
}

var (
	leakedEmailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	leakedPhoneRe    = regexp.MustCompile(`\+?[0-9][0-9 ().-]{7,20}`)
	leakedLinkedInRe = regexp.MustCompile(`(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?`)

	// yearSpanRe recognizes date ranges that the greedy phone pattern would
	// otherwise swallow; employment periods are professional content.
	yearSpanRe = regexp.MustCompile(`^\d{4}\s*[-–]\s*\d{4}$`)
)

// Anonymize splits the text into sections, drops personal ones, scrubs
// leaked contact details from the kept ones and reassembles the result.
// Returns an error only for a nil config; malformed input always yields a
// best-effort result.
func Anonymize(text string, cfg *types.AnonymizationConfig) (string, *types.AnonymizationStats, error) {
	if cfg == nil {
		return "", nil, ErrNilConfig
	}

	stats := types.NewAnonymizationStats()
	if strings.TrimSpace(text) == "" {
		return "", stats, nil
	}

	split := sections.Split(text)
	for key := range split {
		stats.OriginalSections[key] = true
	}

	// A single long summary means header detection failed; fall back to
	// simpler splitting before giving up on structure entirely.
	if summary, ok := split[sections.KeySummary]; ok && len(split) == 1 && len(summary) > 200 {
		split = fallbackSections(summary, stats)
		stats.OriginalSections = make(map[string]bool)
		for key := range split {
			stats.OriginalSections[key] = true
		}
	}

	kept := filterSections(split, cfg, stats)
	cleaned := make(map[string]string, len(kept))
	for key, content := range kept {
		cleaned[key] = scrubLeakedPII(content, cfg, stats)
	}

	if cfg.IncludeCleanedSummary {
		if summary, ok := split[sections.KeySummary]; ok {
			if professional := professionalSummary(summary, stats); strings.TrimSpace(professional) != "" {
				cleaned["professional_summary"] = professional
			}
		}
	}

	return reconstruct(cleaned), stats, nil
}

// filterSections keeps professional sections, drops personal ones, and
// treats unknown keys per config.
func filterSections(split sections.Map, cfg *types.AnonymizationConfig, stats *types.AnonymizationStats) map[string]string {
	kept := make(map[string]string)

	for key, content := range split {
		if keepSection(strings.ToLower(key), cfg) {
			kept[key] = content
			stats.KeptSections[key] = true
		} else {
			stats.RemovedSections[key] = true
			stats.RemovedCharacterCount += len(content)
		}
	}

	return kept
}

func keepSection(key string, cfg *types.AnonymizationConfig) bool {
	if professionalSections[key] {
		return true
	}
	if personalSections[key] {
		return false
	}
	return cfg.KeepUnknownSections
}

// scrubLeakedPII replaces contact details that leaked into a kept section
// with fixed tags, logging every removed literal.
func scrubLeakedPII(content string, cfg *types.AnonymizationConfig, stats *types.AnonymizationStats) string {
	cleaned := content

	if cfg.RemoveLeakedEmails {
		cleaned = leakedEmailRe.ReplaceAllStringFunc(cleaned, func(match string) string {
			stats.AnonymizedItems = append(stats.AnonymizedItems, "EMAIL: "+match)
			return "[EMAIL_REMOVED]"
		})
	}

	if cfg.RemoveLeakedPhones {
		cleaned = leakedPhoneRe.ReplaceAllStringFunc(cleaned, func(match string) string {
			trimmed := strings.TrimSpace(match)
			if len(trimmed) < 7 || yearSpanRe.MatchString(trimmed) {
				return match
			}
			stats.AnonymizedItems = append(stats.AnonymizedItems, "PHONE: "+trimmed)
			return "[PHONE_REMOVED]"
		})
	}

	if cfg.RemoveLeakedSocialMedia {
		cleaned = leakedLinkedInRe.ReplaceAllStringFunc(cleaned, func(match string) string {
			stats.AnonymizedItems = append(stats.AnonymizedItems, "LINKEDIN: "+match)
			return "[LINKEDIN_REMOVED]"
		})
	}

	return cleaned
}
