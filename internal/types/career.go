package types

import "time"

// DateRange is the result of parsing one free-text date-range expression.
// StartDate is nil only on total failure; a nil EndDate on a valid range
// means the position is ongoing.
type DateRange struct {
	StartDate *time.Time
	EndDate   *time.Time
	Valid     bool
	// Message carries the matched pattern name and any non-fatal validation
	// warnings; it is diagnostic only.
	Message string
}

// Ongoing reports whether the range parsed successfully with no end date.
func (r DateRange) Ongoing() bool {
	return r.Valid && r.StartDate != nil && r.EndDate == nil
}

// CareerAnalysis summarizes a candidate's work timeline: total span worked,
// the career boundaries, and any gaps or overlapping positions.
type CareerAnalysis struct {
	TotalExperienceMonths int             `json:"total_experience_months"`
	CareerStartDate       *time.Time      `json:"career_start_date,omitempty"`
	CareerEndDate         *time.Time      `json:"career_end_date,omitempty"` // nil = currently employed
	HasGaps               bool            `json:"has_gaps"`
	HasOverlaps           bool            `json:"has_overlaps"`
	Gaps                  []CareerGap     `json:"gaps,omitempty"`
	Overlaps              []CareerOverlap `json:"overlaps,omitempty"`
}

// CareerGap is a hole between the end of one position and the start of the next.
type CareerGap struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Months int       `json:"months"`
}

// CareerOverlap is a period where two consecutive (by start date) positions ran at once.
type CareerOverlap struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Months int       `json:"months"`
}
