// Package parsing composes the section splitter, the per-section extractors
// and the personal-info detector into a single rule-based text-to-candidate
// pass. This is the deterministic alternative to any model-driven parsing
// backend: purely extractive, no data is ever introduced that was not in the
// source text.
package parsing

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-extractor/internal/extract"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// ParseCandidate extracts a structured candidate from raw résumé text. now
// pins the clock for all date validation in the pass. The result is always
// non-nil; missing fragments are simply absent.
func ParseCandidate(text string, now time.Time) *types.Candidate {
	contact := extract.PersonalInfo(text)
	split := sections.Split(text)

	skills := extract.Skills(split[sections.KeySkills], text)

	return &types.Candidate{
		ID:              uuid.New(),
		Name:            contact.Name,
		Email:           contact.Email,
		Phone:           contact.Phone,
		LinkedIn:        extract.LinkedInURL(text),
		Skills:          skills,
		WorkExperiences: extract.WorkExperience(split[sections.KeyExperience], now),
		Educations:      extract.Education(split[sections.KeyEducation]),
	}
}

// CareerRanges converts extracted work experiences into date ranges for
// timeline analysis. Entries without a start date are carried as invalid so
// the analyzer's own filtering stays the single source of truth.
func CareerRanges(experiences []types.WorkExperience) []types.DateRange {
	ranges := make([]types.DateRange, 0, len(experiences))
	for _, exp := range experiences {
		ranges = append(ranges, types.DateRange{
			StartDate: exp.StartDate,
			EndDate:   exp.EndDate,
			Valid:     exp.StartDate != nil,
		})
	}
	return ranges
}
