package dates

import (
	"sort"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

// AnalyzeTimeline walks the candidate's parsed work intervals in start-date
// order and computes total experience plus any gaps or overlaps between
// consecutive positions. A nil end date is treated as now for duration math
// only; CareerEndDate stays nil to signal current employment.
func AnalyzeTimeline(ranges []types.DateRange, now time.Time) types.CareerAnalysis {
	valid := make([]types.DateRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Valid && r.StartDate != nil {
			valid = append(valid, r)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].StartDate.Before(*valid[j].StartDate)
	})

	analysis := types.CareerAnalysis{}
	if len(valid) == 0 {
		return analysis
	}

	totalMonths := 0
	var previousEnd *time.Time

	for _, current := range valid {
		currentStart := *current.StartDate
		currentEnd := now
		if current.EndDate != nil {
			currentEnd = *current.EndDate
		}

		totalMonths += monthsBetween(currentStart, currentEnd)

		if previousEnd != nil {
			gap := monthsBetween(*previousEnd, currentStart)
			switch {
			case gap > 1:
				analysis.HasGaps = true
				analysis.Gaps = append(analysis.Gaps, types.CareerGap{
					Start:  *previousEnd,
					End:    currentStart,
					Months: gap,
				})
			case gap < 0:
				analysis.HasOverlaps = true
				analysis.Overlaps = append(analysis.Overlaps, types.CareerOverlap{
					Start:  currentStart,
					End:    *previousEnd,
					Months: -gap,
				})
			}
		}

		end := currentEnd
		previousEnd = &end
	}

	analysis.TotalExperienceMonths = totalMonths
	analysis.CareerStartDate = valid[0].StartDate
	analysis.CareerEndDate = valid[len(valid)-1].EndDate // nil if ongoing

	return analysis
}
