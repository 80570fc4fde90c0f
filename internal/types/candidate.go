// Package types provides type definitions for structured data used throughout the resume-extractor system.
package types

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Candidate represents the structured data extracted from one résumé.
// It is built fresh per parse and never mutated afterwards; persistence
// happens downstream from the serialized form.
type Candidate struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string    `json:"phone,omitempty"`
	LinkedIn string    `json:"linkedin,omitempty" validate:"omitempty,url"`

	// Skills is the comma-joined, deduplicated skill list.
	Skills string `json:"skills,omitempty"`

	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations"`
}

// WorkExperience represents a single position held by the candidate.
// Entries without a job title or start date are dropped during extraction.
type WorkExperience struct {
	JobTitle  string     `json:"job_title"`
	Company   string     `json:"company"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"` // nil = ongoing position
	// Description keeps only bullet/action-verb lines from the source entry.
	Description string `json:"description,omitempty"`
}

// Education represents one degree or diploma entry.
type Education struct {
	Institution    string     `json:"institution"`
	Degree         string     `json:"degree"`
	GraduationDate *time.Time `json:"graduation_date,omitempty"` // nil if unparseable
	Details        string     `json:"details,omitempty"`
}

// Validate checks the candidate's contact fields using the validator.
func (c *Candidate) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate checks cross-field consistency of a work experience entry.
// An end date, when present, must not precede the start date.
func (w *WorkExperience) Validate() bool {
	if w.StartDate == nil || w.EndDate == nil {
		return true
	}
	return !w.EndDate.Before(*w.StartDate)
}

// Ongoing reports whether the position has no resolved end date.
func (w *WorkExperience) Ongoing() bool {
	return w.EndDate == nil
}

var nonPhoneChars = regexp.MustCompile(`[\s\-().+]`)

// ValidPhone reports whether s is a plausible phone number: after stripping
// formatting characters it must be 7-15 digits and nothing else.
func ValidPhone(s string) bool {
	if s == "" {
		return false
	}
	clean := nonPhoneChars.ReplaceAllString(s, "")
	if len(clean) < 7 || len(clean) > 15 {
		return false
	}
	for _, r := range clean {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
