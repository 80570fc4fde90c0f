package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow pins the clock so future-date validation is reproducible.
var testNow = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func date(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

func TestParseRange_EnglishFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		start   time.Time
		end     time.Time
		ongoing bool
	}{
		{"Full month names", "January 2020 - December 2022", date(2020, 1), date(2022, 12), false},
		{"Abbreviated months", "Jan 2020 - Dec 2022", date(2020, 1), date(2022, 12), false},
		{"Word separator to", "January 2020 to December 2022", date(2020, 1), date(2022, 12), false},
		{"Word separator till", "January 2020 till December 2022", date(2020, 1), date(2022, 12), false},
		{"En dash separator", "January 2020 – December 2022", date(2020, 1), date(2022, 12), false},
		{"Numeric MM/YYYY", "01/2020 - 12/2022", date(2020, 1), date(2022, 12), false},
		{"ISO style YYYY-MM", "2020-01 - 2022-12", date(2020, 1), date(2022, 12), false},
		{"Month year to present", "March 2021 - Present", date(2021, 3), time.Time{}, true},
		{"Month year to current", "March 2021 - Current", date(2021, 3), time.Time{}, true},
		{"Bare years", "2018 - 2022", date(2018, 1), date(2022, 1), false},
		{"Bare year to present", "2021 - Present", date(2021, 1), time.Time{}, true},
		{"Embedded in line", "Software Engineer, Acme Corp, January 2020 - December 2022", date(2020, 1), date(2022, 12), false},
		{"Trailing punctuation", "January 2020 - December 2022.", date(2020, 1), date(2022, 12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRange(tt.input, testNow)

			require.True(t, result.Valid, "expected valid parse, got message: %s", result.Message)
			require.NotNil(t, result.StartDate)
			assert.Equal(t, tt.start, *result.StartDate)

			if tt.ongoing {
				assert.Nil(t, result.EndDate, "ongoing range should have nil end date")
				assert.True(t, result.Ongoing())
			} else {
				require.NotNil(t, result.EndDate)
				assert.Equal(t, tt.end, *result.EndDate)
				assert.False(t, result.Ongoing())
			}
		})
	}
}

func TestParseRange_FrenchFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		start   time.Time
		end     time.Time
		ongoing bool
	}{
		{"Full month names", "janvier 2020 - décembre 2022", date(2020, 1), date(2022, 12), false},
		{"Mixed case", "Janvier 2020 - Décembre 2022", date(2020, 1), date(2022, 12), false},
		{"Du au form", "du janvier 2020 au décembre 2022", date(2020, 1), date(2022, 12), false},
		{"De a numeric form", "de 01/2020 à 12/2022", date(2020, 1), date(2022, 12), false},
		{"Month to aujourd'hui", "mars 2021 - Aujourd'hui", date(2021, 3), time.Time{}, true},
		{"Month to actuel", "mars 2021 - actuel", date(2021, 3), time.Time{}, true},
		{"Without diacritics", "fevrier 2020 - decembre 2022", date(2020, 2), date(2022, 12), false},
		{"Abbreviated months", "janv 2020 - sept 2022", date(2020, 1), date(2022, 9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRange(tt.input, testNow)

			require.True(t, result.Valid, "expected valid parse, got message: %s", result.Message)
			require.NotNil(t, result.StartDate)
			assert.Equal(t, tt.start, *result.StartDate)

			if tt.ongoing {
				assert.Nil(t, result.EndDate)
			} else {
				require.NotNil(t, result.EndDate)
				assert.Equal(t, tt.end, *result.EndDate)
			}
		})
	}
}

func TestParseRange_Quarters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start time.Time
		end   time.Time
	}{
		{"Q1 to Q4", "Q1 2020 - Q4 2022", date(2020, 1), date(2022, 10)},
		{"Q2 to Q3", "Q2 2020 - Q3 2021", date(2020, 4), date(2021, 7)},
		{"Lowercase quarters", "q1 2019 - q2 2020", date(2019, 1), date(2020, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRange(tt.input, testNow)

			require.True(t, result.Valid, "expected valid parse, got message: %s", result.Message)
			require.NotNil(t, result.StartDate)
			require.NotNil(t, result.EndDate)
			assert.Equal(t, tt.start, *result.StartDate)
			assert.Equal(t, tt.end, *result.EndDate)
		})
	}
}

func TestParseRange_QuarterMonthMapping(t *testing.T) {
	// Each quarter must map to its first month.
	expected := map[string]time.Month{
		"Q1 2020 - Q1 2021": time.January,
		"Q2 2020 - Q2 2021": time.April,
		"Q3 2020 - Q3 2021": time.July,
		"Q4 2020 - Q4 2021": time.October,
	}

	for input, month := range expected {
		result := ParseRange(input, testNow)
		require.True(t, result.Valid, "input %q: %s", input, result.Message)
		assert.Equal(t, month, result.StartDate.Month(), "input %q", input)
		assert.Equal(t, month, result.EndDate.Month(), "input %q", input)
	}
}

func TestParseRange_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   "},
		{"No date at all", "Senior Software Engineer"},
		{"Reversed range", "December 2022 - January 2020"},
		{"Single year", "graduated 2020 with honors in absentia"},
		{"Year out of range low", "1890 - 1900"},
		{"Year out of range high", "2090 - 2099"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseRange(tt.input, testNow)
			assert.False(t, result.Valid)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestParseRange_FutureDatesRejected(t *testing.T) {
	// Years within the plausible window but after now must invalidate.
	result := ParseRange("January 2026 - Present", testNow)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Message, "future")
}

func TestParseRange_ShortDurationWarnsButStaysValid(t *testing.T) {
	result := ParseRange("January 2020 - January 2020", testNow)
	assert.True(t, result.Valid)
	assert.Contains(t, result.Message, "very short")
}

func TestParseRange_PatternPriority(t *testing.T) {
	// A month-year expression must not be swallowed by the bare year grammar.
	result := ParseRange("March 2020 - September 2022", testNow)
	require.True(t, result.Valid)
	assert.Equal(t, time.March, result.StartDate.Month())
	assert.Equal(t, time.September, result.EndDate.Month())
}

func TestIsOngoing(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2020 - Present", true},
		{"2020 - current", true},
		{"mars 2021 - aujourd'hui", true},
		{"depuis 2019, poste actuel", true},
		{"January 2020 - December 2022", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsOngoing(tt.input), "input %q", tt.input)
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"january", 1},
		{"Jan", 1},
		{"décembre", 12},
		{"decembre", 12},
		{"août", 8},
		{"aout", 8},
		{"sept", 9},
		{"mai", 5},
	}

	for _, tt := range tests {
		month, err := MonthNumber(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, month, "input %q", tt.input)
	}

	_, err := MonthNumber("notamonth")
	assert.Error(t, err)
}
