package extract

import (
	"regexp"
	"strings"
)

// skillDictionary is the curated list of recognized skills; matches keep the
// canonical spelling listed here, in first-seen (dictionary) order.
var skillDictionary = []string{
	"Java", "Python", "JavaScript", "C++", "C#", "Ruby", "Go", "TypeScript", "PHP", "Swift",
	"React", "Angular", "Vue.js", "Node.js", "Spring Boot", "Django", "Flask", "Ruby on Rails",
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Oracle",
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Terraform",
	"HTML", "CSS", "Sass", "Less",
	"Agile", "Scrum", "JIRA", "Git", "Jenkins", "CI/CD",
}

// skillRes holds one compiled word-boundary pattern per dictionary entry.
// Boundaries are applied only next to word characters; "C++" and "C#" end on
// symbols where \b can never match.
var skillRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(skillDictionary))
	for i, skill := range skillDictionary {
		pattern := regexp.QuoteMeta(skill)
		if isWordChar(skill[0]) {
			pattern = `\b` + pattern
		}
		if isWordChar(skill[len(skill)-1]) {
			pattern += `\b`
		}
		res[i] = regexp.MustCompile(`(?i)` + pattern)
	}
	return res
}()

func isWordChar(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Skills matches the skill dictionary against the skills section and joins
// hits with ", ". When the section yields nothing the whole document is
// searched instead. Deduplication is inherent: each dictionary entry can
// contribute at most once, so repeated runs are order-stable.
func Skills(sectionText, wholeText string) string {
	if found := matchSkills(sectionText); found != "" {
		return found
	}
	return matchSkills(wholeText)
}

func matchSkills(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var found []string
	for i, re := range skillRes {
		if re.MatchString(text) {
			found = append(found, skillDictionary[i])
		}
	}
	return strings.Join(found, ", ")
}
