package validation

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	scriptBlockPattern  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	jsSchemePattern     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
)

// SanitizeString strips script blocks, javascript: schemes and inline event
// handler assignments, then trims whitespace.
func SanitizeString(s string) string {
	s = scriptBlockPattern.ReplaceAllString(s, "")
	s = jsSchemePattern.ReplaceAllString(s, "")
	s = eventHandlerPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Sanitize applies SanitizeString to strings and returns any other value unchanged
func Sanitize(v any) any {
	if s, ok := v.(string); ok {
		return SanitizeString(s)
	}
	return v
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
