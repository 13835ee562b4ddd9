package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
)

const (
	AgeUnknown = "Unknown"
	AgeInvalid = "Invalid Date"
)

// FormatAge renders the time elapsed since start in days, months, or years and months.
// Start dates in the future count as zero days.
func FormatAge(start string, now time.Time) string {
	if strings.TrimSpace(start) == "" {
		return AgeUnknown
	}
	t, ok := shape.ParseDate(start)
	if !ok {
		return AgeInvalid
	}

	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}

	switch {
	case days < 30:
		return plural(days, "day")
	case days < 365:
		return plural(days/30, "month")
	default:
		return plural(days/365, "year") + ", " + plural((days%365)/30, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
