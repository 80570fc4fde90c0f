// Package sections segments raw résumé text into canonical sections
// (summary, experience, education, skills) using confidence-scored header
// detection. Splitting is best-effort and never fails: text with no
// detectable headers maps entirely to summary.
package sections

import "strings"

// Canonical section keys.
const (
	KeySummary    = "summary"
	KeyExperience = "experience"
	KeyEducation  = "education"
	KeySkills     = "skills"
)

// sectionKeyword pairs a surface header form with its canonical key.
// Detection scans these rows in order; adding a locale is a data change.
type sectionKeyword struct {
	keyword string
	key     string
}

var sectionKeywords = []sectionKeyword{
	// English
	{"employment history", KeyExperience},
	{"work experience", KeyExperience},
	{"professional experience", KeyExperience},
	{"work history", KeyExperience},
	{"career history", KeyExperience},
	{"experience", KeyExperience},
	{"employment", KeyExperience},
	{"academic background", KeyEducation},
	{"academic history", KeyEducation},
	{"education", KeyEducation},
	{"technical skills", KeySkills},
	{"core competencies", KeySkills},
	{"competencies", KeySkills},
	{"skills", KeySkills},
	{"summary", KeySummary},
	{"profile", KeySummary},
	{"objective", KeySummary},
	{"about", KeySummary},

	// French
	{"expériences professionnelles", KeyExperience},
	{"expérience professionnelle", KeyExperience},
	{"historique professionnel", KeyExperience},
	{"parcours professionnel", KeyExperience},
	{"expériences", KeyExperience},
	{"expérience", KeyExperience},
	{"parcours académique", KeyEducation},
	{"formations", KeyEducation},
	{"formation", KeyEducation},
	{"éducation", KeyEducation},
	{"compétences techniques", KeySkills},
	{"compétences", KeySkills},
	{"savoir-faire", KeySkills},
	{"profil", KeySummary},
	{"à propos", KeySummary},
	{"résumé", KeySummary},
	{"objectif", KeySummary},
}

// canonicalRule maps any keyword-bearing string to a canonical key by
// substring containment, evaluated in priority order.
type canonicalRule struct {
	substrings []string
	key        string
}

var canonicalRules = []canonicalRule{
	{[]string{"experience", "expérience", "employment", "career", "work", "professional", "parcours professionnel", "historique professionnel"}, KeyExperience},
	{[]string{"education", "formation", "academic", "éducation", "parcours académique"}, KeyEducation},
	{[]string{"skill", "compétences", "competenc", "savoir-faire"}, KeySkills},
	{[]string{"summary", "profil", "à propos", "objective", "objectif", "résumé", "about"}, KeySummary},
}

// CanonicalKey normalizes a matched header keyword to one of the canonical
// section keys. Unmatched keywords default to summary.
func CanonicalKey(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, rule := range canonicalRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.key
			}
		}
	}
	return KeySummary
}
