package newslist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_ValidDates(t *testing.T) {
	cases := map[string]string{
		"2024-01-15":           "Jan 2024",
		"2023-12-31":           "Dec 2023",
		"1999-02-28":           "Feb 1999",
		"2024-09-01T10:00:00Z": "Sep 2024",
		"2021-06-30 18:45:00":  "Jun 2021",
		"2020-03-01":           "Mar 2020",
	}
	for input, want := range cases {
		assert.Equal(t, want, FormatDate(input), "input %q", input)
	}
}

func TestFormatDate_InvalidDatesReturnedVerbatim(t *testing.T) {
	inputs := []string{
		"not-a-date",
		"",
		"2024-13-45",
		"  ",
		"1.2",
		"12/3",
		"Jan 5",
		"1234567890",
	}
	for _, input := range inputs {
		assert.Equal(t, input, FormatDate(input))
	}
}

func TestFormatDate_IgnoresServerTimeZone(t *testing.T) {
	// полночь по UTC не должна превращаться в предыдущий месяц
	assert.Equal(t, "Mar 2024", FormatDate("2024-03-01"))
	assert.Equal(t, "Jan 2025", FormatDate("2025-01-01T00:00:00Z"))
}

func TestFormatDate_ReportsFallback(t *testing.T) {
	label, ok := formatDate("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, "Jan 2024", label)

	label, ok = formatDate("someday")
	assert.False(t, ok)
	assert.Equal(t, "someday", label)
}
