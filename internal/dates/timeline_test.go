package dates

import (
	"testing"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRange(start, end time.Time) types.DateRange {
	return types.DateRange{StartDate: &start, EndDate: &end, Valid: true}
}

func ongoingRange(start time.Time) types.DateRange {
	return types.DateRange{StartDate: &start, Valid: true}
}

func TestAnalyzeTimeline_Empty(t *testing.T) {
	analysis := AnalyzeTimeline(nil, testNow)

	assert.Zero(t, analysis.TotalExperienceMonths)
	assert.Nil(t, analysis.CareerStartDate)
	assert.Nil(t, analysis.CareerEndDate)
	assert.False(t, analysis.HasGaps)
	assert.False(t, analysis.HasOverlaps)
}

func TestAnalyzeTimeline_SinglePosition(t *testing.T) {
	ranges := []types.DateRange{
		validRange(date(2020, 1), date(2022, 1)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	assert.Equal(t, 24, analysis.TotalExperienceMonths)
	require.NotNil(t, analysis.CareerStartDate)
	assert.Equal(t, date(2020, 1), *analysis.CareerStartDate)
	require.NotNil(t, analysis.CareerEndDate)
	assert.Equal(t, date(2022, 1), *analysis.CareerEndDate)
	assert.False(t, analysis.HasGaps)
	assert.False(t, analysis.HasOverlaps)
}

func TestAnalyzeTimeline_DetectsGap(t *testing.T) {
	ranges := []types.DateRange{
		validRange(date(2020, 1), date(2020, 12)),
		validRange(date(2021, 6), date(2022, 12)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	require.True(t, analysis.HasGaps)
	require.Len(t, analysis.Gaps, 1)
	gap := analysis.Gaps[0]
	assert.Equal(t, date(2020, 12), gap.Start)
	assert.Equal(t, date(2021, 6), gap.End)
	assert.Equal(t, 6, gap.Months)
	assert.False(t, analysis.HasOverlaps)
}

func TestAnalyzeTimeline_OneMonthTransitionIsNotGap(t *testing.T) {
	// Ending in December and starting in January is a normal job change.
	ranges := []types.DateRange{
		validRange(date(2019, 3), date(2020, 12)),
		validRange(date(2021, 1), date(2022, 6)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	assert.False(t, analysis.HasGaps)
	assert.Empty(t, analysis.Gaps)
}

func TestAnalyzeTimeline_DetectsOverlap(t *testing.T) {
	ranges := []types.DateRange{
		validRange(date(2020, 1), date(2021, 6)),
		validRange(date(2021, 1), date(2022, 12)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	require.True(t, analysis.HasOverlaps)
	require.Len(t, analysis.Overlaps, 1)
	overlap := analysis.Overlaps[0]
	assert.Equal(t, date(2021, 1), overlap.Start)
	assert.Equal(t, date(2021, 6), overlap.End)
	assert.Equal(t, 5, overlap.Months)
	assert.False(t, analysis.HasGaps)
}

func TestAnalyzeTimeline_OngoingPosition(t *testing.T) {
	ranges := []types.DateRange{
		validRange(date(2018, 1), date(2020, 1)),
		ongoingRange(date(2020, 1)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	// Ongoing position counts up to now for duration math.
	expected := 24 + monthsBetween(date(2020, 1), testNow)
	assert.Equal(t, expected, analysis.TotalExperienceMonths)
	// But the career end stays open.
	assert.Nil(t, analysis.CareerEndDate)
}

func TestAnalyzeTimeline_IgnoresInvalidRanges(t *testing.T) {
	ranges := []types.DateRange{
		{Valid: false, Message: "No matching date pattern found"},
		validRange(date(2020, 1), date(2021, 1)),
		{Valid: true}, // no start date
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	assert.Equal(t, 12, analysis.TotalExperienceMonths)
	require.NotNil(t, analysis.CareerStartDate)
	assert.Equal(t, date(2020, 1), *analysis.CareerStartDate)
}

func TestAnalyzeTimeline_UnsortedInput(t *testing.T) {
	// Input order must not matter; analysis sorts by start date.
	ranges := []types.DateRange{
		validRange(date(2021, 6), date(2022, 12)),
		validRange(date(2020, 1), date(2020, 12)),
	}

	analysis := AnalyzeTimeline(ranges, testNow)

	require.NotNil(t, analysis.CareerStartDate)
	assert.Equal(t, date(2020, 1), *analysis.CareerStartDate)
	require.NotNil(t, analysis.CareerEndDate)
	assert.Equal(t, date(2022, 12), *analysis.CareerEndDate)
	assert.True(t, analysis.HasGaps)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected int
	}{
		{"Same month", date(2020, 1), date(2020, 1), 0},
		{"One month", date(2020, 1), date(2020, 2), 1},
		{"One year", date(2020, 1), date(2021, 1), 12},
		{"Across year boundary", date(2020, 11), date(2021, 2), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthsBetween(tt.a, tt.b))
		})
	}
}
