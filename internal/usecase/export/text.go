// Package export renders meeting records as PDF reports and spreadsheets.
package export

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Placeholder is rendered for any absent text field
const Placeholder = "N/A"

const ellipsis = "..."

// FilenamePrefix starts every exported file name
const FilenamePrefix = "LTI_OMT_Meeting_System_"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9-]`)

// OrNA returns s, or the placeholder when s is blank
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// Truncate shortens s to at most limit characters, the ellipsis included.
// Blank text becomes the placeholder.
func Truncate(s string, limit int) string {
	s = OrNA(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	if limit <= len(ellipsis) {
		return string(runes[:limit])
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

// Filename builds the download name for a meeting date; a blank date falls back to today
func Filename(date, ext string, now time.Time) string {
	date = strings.TrimSpace(date)
	if date == "" {
		date = now.Format("2006-01-02")
	}
	return FilenamePrefix + unsafeFilenameChars.ReplaceAllString(date, "_") + "." + ext
}
