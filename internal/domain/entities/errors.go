package entities

import "errors"

// Domain errors
var (
	// Persistence errors
	ErrCollectionNotFound = errors.New("collection not found")
	ErrUnknownCollection  = errors.New("unknown collection")

	// Meeting errors
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrMalformedMeeting = errors.New("meeting record is not valid JSON")

	// Export errors
	ErrNoExportData = errors.New("no meeting data to export")

	// Backup errors
	ErrInvalidBackup = errors.New("invalid backup envelope")
)
