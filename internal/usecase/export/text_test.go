package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "N/A", Truncate("", 10))
	assert.Equal(t, "N/A", Truncate("   ", 10))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijk", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "Pompe é...", Truncate("Pompe électrique", 10))
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "LTI_OMT_Meeting_System_2024-03-01.pdf", Filename("2024-03-01", "pdf", now))
	assert.Equal(t, "LTI_OMT_Meeting_System_03_01_2024.xlsx", Filename("03/01/2024", "xlsx", now))
	assert.Equal(t, "LTI_OMT_Meeting_System_2024-06-01.pdf", Filename("", "pdf", now))
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"":           AgeUnknown,
		"whenever":   AgeInvalid,
		"2024-06-01": "0 days",
		"2024-05-31": "1 day",
		"2024-05-03": "29 days",
		"2024-05-02": "1 month",
		"2024-01-01": "5 months",
		"2023-06-01": "1 year, 0 months",
		"2022-01-15": "2 years, 4 months",
		"2030-01-01": "0 days",
	}
	for start, want := range cases {
		assert.Equal(t, want, FormatAge(start, now), start)
	}
}

func TestFormatAge_Monotonic(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	older := FormatAge("2020-01-01", now)
	newer := FormatAge("2023-01-01", now)

	assert.Equal(t, "4 years, 5 months", older)
	assert.Equal(t, "1 year, 5 months", newer)
}
